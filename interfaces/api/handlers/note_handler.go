package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"taskdeck/domain/dto"
	"taskdeck/domain/services"
	"taskdeck/pkg/logger"
	"taskdeck/pkg/utils"
)

type NoteHandler struct {
	noteService services.NoteService
}

func NewNoteHandler(noteService services.NoteService) *NoteHandler {
	return &NoteHandler{noteService: noteService}
}

func (h *NoteHandler) CreateNote(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	var req dto.CreateNoteRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.BadRequestResponse(c, "All fields are required.")
	}

	note, err := h.noteService.CreateNote(ctx, user.ID, &req)
	if err != nil {
		return utils.HandleError(c, err)
	}

	return utils.CreatedResponse(c, dto.NoteToNoteResponse(note))
}

func (h *NoteHandler) GetNotes(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	notes, err := h.noteService.GetUserNotes(ctx, user.ID)
	if err != nil {
		return utils.HandleError(c, err)
	}

	return utils.SuccessResponse(c, dto.NotesToNoteResponses(notes))
}

func (h *NoteHandler) GetNote(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	noteID, err := uuid.Parse(c.Params("noteId"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid note ID")
	}

	note, err := h.noteService.GetNote(ctx, user.ID, noteID)
	if err != nil {
		return utils.HandleError(c, err)
	}

	return utils.SuccessResponse(c, dto.NoteToNoteResponse(note))
}

func (h *NoteHandler) UpdateNote(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	noteID, err := uuid.Parse(c.Params("noteId"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid note ID")
	}

	var req dto.UpdateNoteRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return utils.BadRequestResponse(c, utils.ValidationErrorMessage(err))
	}

	note, err := h.noteService.UpdateNote(ctx, user.ID, noteID, &req)
	if err != nil {
		return utils.HandleError(c, err)
	}

	return utils.SuccessResponse(c, dto.NoteToNoteResponse(note))
}

func (h *NoteHandler) DeleteNote(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	noteID, err := uuid.Parse(c.Params("noteId"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid note ID")
	}

	if err := h.noteService.DeleteNote(ctx, user.ID, noteID); err != nil {
		return utils.HandleError(c, err)
	}

	return utils.SuccessResponse(c, fiber.Map{"message": "Note deleted successfully"})
}
