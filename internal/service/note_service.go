package service

import (
	"context"
	"time"

	"shared-notes-be/internal/dto"
	"shared-notes-be/internal/entity"
	"shared-notes-be/internal/pkg/apperrors"
	"shared-notes-be/internal/repository/specification"
	"shared-notes-be/internal/repository/unitofwork"
	"shared-notes-be/pkg/access"
	"shared-notes-be/pkg/events"
	pkgtags "shared-notes-be/pkg/tags"

	"github.com/google/uuid"
)

const (
	defaultPageLimit = 100
	maxPageLimit     = 100
)

type INoteService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateNoteRequest) (*dto.NoteResponse, error)
	List(ctx context.Context, userId uuid.UUID, q *dto.ListNotesQuery) ([]*dto.NoteResponse, error)
	ListPublic(ctx context.Context, skip, limit int) ([]*dto.NoteResponse, error)
	Search(ctx context.Context, userId uuid.UUID, q *dto.SearchNotesQuery) ([]*dto.NoteResponse, error)
	Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.NoteResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
	ListTags(ctx context.Context, userId uuid.UUID) ([]*dto.TagResponse, error)
	Share(ctx context.Context, userId uuid.UUID, req *dto.ShareNoteRequest) (*dto.ShareResponse, error)
	Unshare(ctx context.Context, userId uuid.UUID, noteId, targetUserId uuid.UUID) error
}

type noteService struct {
	uowFactory unitofwork.RepositoryFactory
	resolver   *access.Resolver
	publisher  IPublisherService
}

func NewNoteService(uowFactory unitofwork.RepositoryFactory, publisher IPublisherService) INoteService {
	return &noteService{
		uowFactory: uowFactory,
		resolver:   access.NewResolver(),
		publisher:  publisher,
	}
}

func toNoteResponse(note *entity.Note) *dto.NoteResponse {
	tagNames := make([]string, len(note.Tags))
	for i, t := range note.Tags {
		tagNames[i] = t.Name
	}
	return &dto.NoteResponse{
		Id:        note.Id,
		Title:     note.Title,
		Content:   note.Content,
		IsPublic:  note.IsPublic,
		OwnerId:   note.OwnerId,
		Tags:      tagNames,
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
	}
}

func toNoteResponses(notes []*entity.Note) []*dto.NoteResponse {
	res := make([]*dto.NoteResponse, len(notes))
	for i, n := range notes {
		res[i] = toNoteResponse(n)
	}
	return res
}

func clampPage(skip, limit int) (int, int) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return skip, limit
}

// requireAccess loads the note and gates it at the required level.
// A note the caller cannot even read stays indistinguishable from a
// nonexistent one; a readable note at an insufficient level is forbidden.
func (s *noteService) requireAccess(
	ctx context.Context,
	uow unitofwork.UnitOfWork,
	userId uuid.UUID,
	noteId uuid.UUID,
	required entity.Permission,
) (*entity.Note, error) {
	note, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: noteId})
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, apperrors.NotFound("note not found")
	}

	share, err := uow.NoteShareRepository().FindOne(ctx,
		specification.ByNoteAndUser{NoteID: noteId, UserID: userId},
	)
	if err != nil {
		return nil, err
	}

	effective := s.resolver.Resolve(userId, note, share)
	if effective == entity.PermissionNone {
		return nil, apperrors.NotFound("note not found")
	}
	if !effective.AtLeast(required) {
		return nil, apperrors.Forbidden("not enough permissions")
	}
	return note, nil
}

// resolveTags finds or creates tags for the normalized names. Calling
// twice with the same names yields the same tag identities.
func (s *noteService) resolveTags(ctx context.Context, uow unitofwork.UnitOfWork, names []string) ([]*entity.Tag, error) {
	normalized := pkgtags.Normalize(names)
	resolved := make([]*entity.Tag, 0, len(normalized))
	for _, name := range normalized {
		tag, err := uow.TagRepository().FindOrCreateByName(ctx, name)
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, tag)
	}
	return resolved, nil
}

func (s *noteService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateNoteRequest) (*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	tags, err := s.resolveTags(ctx, uow, req.Tags)
	if err != nil {
		return nil, err
	}

	note := &entity.Note{
		Id:        uuid.New(),
		Title:     req.Title,
		Content:   req.Content,
		IsPublic:  req.IsPublic,
		OwnerId:   userId,
		CreatedAt: time.Now(),
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.NoteRepository().Create(ctx, note); err != nil {
		return nil, err
	}
	if len(tags) > 0 {
		if err := uow.NoteRepository().ReplaceTags(ctx, note.Id, tags); err != nil {
			return nil, err
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	note.Tags = tags
	s.publishEvent(ctx, events.TypeNoteCreated, map[string]interface{}{
		"note_id": note.Id,
		"user_id": userId,
		"title":   note.Title,
	})

	return toNoteResponse(note), nil
}

func (s *noteService) List(ctx context.Context, userId uuid.UUID, q *dto.ListNotesQuery) ([]*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	skip, limit := clampPage(q.Skip, q.Limit)

	specs := []specification.Specification{
		specification.AccessibleToUser{UserID: userId},
	}
	if q.Query != "" {
		specs = append(specs, specification.NoteSearchQuery{Query: q.Query})
	}
	if q.Tag != "" {
		normalized := pkgtags.Normalize([]string{q.Tag})
		if len(normalized) == 0 {
			return []*dto.NoteResponse{}, nil
		}
		specs = append(specs, specification.HasTag{Name: normalized[0]})
	}
	specs = append(specs,
		specification.OrderBy{Field: "notes.created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: skip},
	)

	notes, err := uow.NoteRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}
	return toNoteResponses(notes), nil
}

func (s *noteService) ListPublic(ctx context.Context, skip, limit int) ([]*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	skip, limit = clampPage(skip, limit)

	notes, err := uow.NoteRepository().FindAll(ctx,
		specification.PublicOnly{},
		specification.OrderBy{Field: "notes.created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: skip},
	)
	if err != nil {
		return nil, err
	}
	return toNoteResponses(notes), nil
}

func (s *noteService) Search(ctx context.Context, userId uuid.UUID, q *dto.SearchNotesQuery) ([]*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	skip, limit := clampPage(q.Skip, q.Limit)

	var specs []specification.Specification
	switch q.Scope {
	case dto.SearchScopeOwn:
		specs = append(specs, specification.OwnedByUser{UserID: userId})
	case dto.SearchScopeShared:
		specs = append(specs, specification.SharedWithUser{UserID: userId})
	case dto.SearchScopePublic:
		specs = append(specs, specification.PublicOnly{})
	case dto.SearchScopeAll, "":
		specs = append(specs, specification.AccessibleToUser{UserID: userId})
	default:
		return nil, apperrors.BadRequest("invalid search scope")
	}

	if q.Query != "" {
		specs = append(specs, specification.NoteSearchQuery{Query: q.Query})
	}
	if q.Tag != "" {
		normalized := pkgtags.Normalize([]string{q.Tag})
		if len(normalized) == 0 {
			return []*dto.NoteResponse{}, nil
		}
		specs = append(specs, specification.HasTag{Name: normalized[0]})
	}
	specs = append(specs,
		specification.OrderBy{Field: "notes.created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: skip},
	)

	notes, err := uow.NoteRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}
	return toNoteResponses(notes), nil
}

func (s *noteService) Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := s.requireAccess(ctx, uow, userId, id, entity.PermissionRead)
	if err != nil {
		return nil, err
	}
	return toNoteResponse(note), nil
}

func (s *noteService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := s.requireAccess(ctx, uow, userId, req.Id, entity.PermissionWrite)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	note.Title = req.Title
	note.Content = req.Content
	if req.IsPublic != nil {
		note.IsPublic = *req.IsPublic
	}
	note.UpdatedAt = &now

	var tags []*entity.Tag
	if req.Tags != nil {
		tags, err = s.resolveTags(ctx, uow, *req.Tags)
		if err != nil {
			return nil, err
		}
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.NoteRepository().Update(ctx, note); err != nil {
		return nil, err
	}
	if req.Tags != nil {
		if err := uow.NoteRepository().ReplaceTags(ctx, note.Id, tags); err != nil {
			return nil, err
		}
		note.Tags = tags
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, events.TypeNoteUpdated, map[string]interface{}{
		"note_id": note.Id,
		"user_id": userId,
	})

	return toNoteResponse(note), nil
}

// Delete removes the note and its share rows. Tag records survive;
// only the join rows go, so tags may become orphaned.
func (s *noteService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if note == nil || !s.resolver.IsOwner(userId, note) {
		return apperrors.NotFound("note not found or you don't have permission to delete it")
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.NoteRepository().ClearTags(ctx, id); err != nil {
		return err
	}
	if err := uow.NoteShareRepository().DeleteAllByNote(ctx, id); err != nil {
		return err
	}
	if err := uow.NoteRepository().Delete(ctx, id); err != nil {
		return err
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	s.publishEvent(ctx, events.TypeNoteDeleted, map[string]interface{}{
		"note_id": id,
		"user_id": userId,
	})
	return nil
}

func (s *noteService) ListTags(ctx context.Context, userId uuid.UUID) ([]*dto.TagResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	tags, err := uow.TagRepository().FindAllForOwner(ctx, userId)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.TagResponse, len(tags))
	for i, t := range tags {
		res[i] = &dto.TagResponse{Id: t.Id, Name: t.Name}
	}
	return res, nil
}

func (s *noteService) Share(ctx context.Context, userId uuid.UUID, req *dto.ShareNoteRequest) (*dto.ShareResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: req.NoteId})
	if err != nil {
		return nil, err
	}
	if note == nil || !s.resolver.IsOwner(userId, note) {
		return nil, apperrors.NotFound("note not found or you don't have permission to share it")
	}

	if req.UserId == userId {
		return nil, apperrors.BadRequest("cannot share a note with its owner")
	}

	target, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: req.UserId})
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, apperrors.NotFound("target user not found")
	}

	// Unspecified permission defaults to read; write/admin must be
	// explicitly requested.
	permStr := req.Permission
	if permStr == "" {
		permStr = "read"
	}
	perm, err := entity.ParsePermission(permStr)
	if err != nil {
		return nil, apperrors.BadRequest(err.Error())
	}

	share := &entity.NoteShare{
		Id:         uuid.New(),
		NoteId:     req.NoteId,
		UserId:     req.UserId,
		Permission: perm,
		CreatedAt:  time.Now(),
	}
	if err := uow.NoteShareRepository().Upsert(ctx, share); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, events.TypeNoteShared, map[string]interface{}{
		"note_id":    req.NoteId,
		"owner_id":   userId,
		"user_id":    req.UserId,
		"permission": perm.String(),
	})

	return &dto.ShareResponse{
		NoteId:     share.NoteId,
		UserId:     share.UserId,
		Permission: share.Permission.String(),
		CreatedAt:  share.CreatedAt,
	}, nil
}

func (s *noteService) Unshare(ctx context.Context, userId uuid.UUID, noteId, targetUserId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: noteId})
	if err != nil {
		return err
	}
	if note == nil || !s.resolver.IsOwner(userId, note) {
		return apperrors.NotFound("note not found or you don't have permission to unshare it")
	}

	share, err := uow.NoteShareRepository().FindOne(ctx,
		specification.ByNoteAndUser{NoteID: noteId, UserID: targetUserId},
	)
	if err != nil {
		return err
	}
	if share == nil {
		return apperrors.NotFound("share not found")
	}

	if err := uow.NoteShareRepository().Delete(ctx, share.Id); err != nil {
		return err
	}

	s.publishEvent(ctx, events.TypeNoteUnshared, map[string]interface{}{
		"note_id":  noteId,
		"owner_id": userId,
		"user_id":  targetUserId,
	})
	return nil
}

func (s *noteService) publishEvent(ctx context.Context, eventType string, data map[string]interface{}) {
	if s.publisher == nil {
		return
	}
	_ = s.publisher.Publish(ctx, events.BaseEvent{
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now(),
	})
}
