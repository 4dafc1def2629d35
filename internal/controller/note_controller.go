package controller

import (
	"shared-notes-be/internal/dto"
	"shared-notes-be/internal/pkg/apperrors"
	"shared-notes-be/internal/pkg/serverutils"
	"shared-notes-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type INoteController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	ListPublic(ctx *fiber.Ctx) error
	Search(ctx *fiber.Ctx) error
	ListTags(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	Share(ctx *fiber.Ctx) error
	Unshare(ctx *fiber.Ctx) error
}

type noteController struct {
	noteService service.INoteService
	authMw      fiber.Handler
}

func NewNoteController(noteService service.INoteService, authMw fiber.Handler) INoteController {
	return &noteController{
		noteService: noteService,
		authMw:      authMw,
	}
}

func (c *noteController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/note/v1")
	// public listing stays outside the auth guard
	h.Get("/public", c.ListPublic)
	h.Use(c.authMw)
	h.Get("/search", c.Search)
	h.Get("/tags", c.ListTags)
	h.Post("", c.Create)
	h.Get("", c.List)
	h.Get("/:id", c.Show)
	h.Put("/:id", c.Update)
	h.Delete("/:id", c.Delete)
	h.Post("/:id/share", c.Share)
	h.Delete("/:id/share/:userId", c.Unshare)
}

func callerID(ctx *fiber.Ctx) uuid.UUID {
	userIdStr, _ := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)
	return userId
}

func noteIDParam(ctx *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return uuid.Nil, apperrors.BadRequest("invalid note id")
	}
	return id, nil
}

func (c *noteController) Create(ctx *fiber.Ctx) error {
	userId := callerID(ctx)

	var req dto.CreateNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.noteService.Create(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create note", res))
}

func (c *noteController) List(ctx *fiber.Ctx) error {
	userId := callerID(ctx)

	q := dto.ListNotesQuery{
		Query: ctx.Query("q"),
		Tag:   ctx.Query("tag"),
		Skip:  ctx.QueryInt("skip"),
		Limit: ctx.QueryInt("limit"),
	}

	res, err := c.noteService.List(ctx.Context(), userId, &q)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list notes", res))
}

func (c *noteController) ListPublic(ctx *fiber.Ctx) error {
	res, err := c.noteService.ListPublic(ctx.Context(), ctx.QueryInt("skip"), ctx.QueryInt("limit"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list public notes", res))
}

func (c *noteController) Search(ctx *fiber.Ctx) error {
	userId := callerID(ctx)

	q := dto.SearchNotesQuery{
		Query: ctx.Query("q"),
		Tag:   ctx.Query("tag"),
		Scope: ctx.Query("scope", dto.SearchScopeAll),
		Skip:  ctx.QueryInt("skip"),
		Limit: ctx.QueryInt("limit"),
	}

	res, err := c.noteService.Search(ctx.Context(), userId, &q)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success search notes", res))
}

func (c *noteController) ListTags(ctx *fiber.Ctx) error {
	userId := callerID(ctx)

	res, err := c.noteService.ListTags(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list tags", res))
}

func (c *noteController) Show(ctx *fiber.Ctx) error {
	userId := callerID(ctx)
	id, err := noteIDParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.noteService.Show(ctx.Context(), userId, id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get note", res))
}

func (c *noteController) Update(ctx *fiber.Ctx) error {
	userId := callerID(ctx)
	id, err := noteIDParam(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.noteService.Update(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update note", res))
}

func (c *noteController) Delete(ctx *fiber.Ctx) error {
	userId := callerID(ctx)
	id, err := noteIDParam(ctx)
	if err != nil {
		return err
	}

	if err := c.noteService.Delete(ctx.Context(), userId, id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete note", nil))
}

func (c *noteController) Share(ctx *fiber.Ctx) error {
	userId := callerID(ctx)
	id, err := noteIDParam(ctx)
	if err != nil {
		return err
	}

	var req dto.ShareNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.NoteId = id
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.noteService.Share(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success share note", res))
}

func (c *noteController) Unshare(ctx *fiber.Ctx) error {
	userId := callerID(ctx)
	id, err := noteIDParam(ctx)
	if err != nil {
		return err
	}

	targetId, err := uuid.Parse(ctx.Params("userId"))
	if err != nil {
		return apperrors.BadRequest("invalid user id")
	}

	if err := c.noteService.Unshare(ctx.Context(), userId, id, targetId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success unshare note", nil))
}
