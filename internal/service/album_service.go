package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"planora.io/planora/ent"
	"planora.io/planora/ent/album"
	errs "planora.io/planora/internal/pkg/errors"
)

// Default album type names seeded by migrations.
const (
	AlbumTypeAllMedia   = "ALLMEDIA"
	AlbumTypeEventAlbum = "EVENTALBUM"
	AlbumTypeCustom     = "CUSTOM"
)

// AlbumService owns album creation and lookup. Album types come from
// the in-memory catalog rather than a per-request query.
type AlbumService struct {
	client  *ent.Client
	catalog *AlbumTypeCatalog
}

// NewAlbumService wires an album service.
func NewAlbumService(client *ent.Client, catalog *AlbumTypeCatalog) *AlbumService {
	return &AlbumService{client: client, catalog: catalog}
}

// CreateAlbum creates an album of the named type. eventID may be empty
// for standalone albums.
func (s *AlbumService) CreateAlbum(ctx context.Context, ownerID, eventID, typeName, name, description string) (*ent.Album, error) {
	at, err := s.catalog.ByName(ctx, typeName)
	if err != nil {
		return nil, err
	}
	if at.IsVirtual {
		return nil, errs.BadRequest("ALBUM_TYPE_VIRTUAL",
			fmt.Sprintf("album type %s is virtual and cannot hold albums", typeName))
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}
	create := s.client.Album.Create().
		SetID(id.String()).
		SetOwnerID(ownerID).
		SetAlbumTypeID(at.ID).
		SetName(name).
		SetDescription(description)
	if eventID != "" {
		create.SetEventID(eventID)
	}
	return create.Save(ctx)
}

// ActiveAlbums lists an owner's active albums.
func (s *AlbumService) ActiveAlbums(ctx context.Context, ownerID string) ([]*ent.Album, error) {
	return s.client.Album.Query().
		Where(
			album.OwnerIDEQ(ownerID),
			album.StatusEQ(album.StatusACTIVE),
		).
		All(ctx)
}

// SeedAlbumTypes inserts the default album type rows if the table is
// empty. Idempotent; called from migration on startup.
func SeedAlbumTypes(ctx context.Context, client *ent.Client) error {
	n, err := client.AlbumType.Query().Count(ctx)
	if err != nil {
		return fmt.Errorf("count album types: %w", err)
	}
	if n > 0 {
		return nil
	}

	seed := []struct {
		id          int
		name        string
		description string
		sortOrder   int
		isVirtual   bool
		isDeletable bool
	}{
		{1, AlbumTypeAllMedia, "All my photos and videos", 10, true, false},
		{2, AlbumTypeEventAlbum, "Shared album of an event", 20, false, false},
		{3, AlbumTypeCustom, "A user-created album", 30, false, true},
	}
	bulk := make([]*ent.AlbumTypeCreate, 0, len(seed))
	for _, s := range seed {
		bulk = append(bulk, client.AlbumType.Create().
			SetID(s.id).
			SetName(s.name).
			SetDescription(s.description).
			SetSortOrder(s.sortOrder).
			SetIsVirtual(s.isVirtual).
			SetIsDeletable(s.isDeletable))
	}
	if err := client.AlbumType.CreateBulk(bulk...).Exec(ctx); err != nil {
		return fmt.Errorf("seed album types: %w", err)
	}
	return nil
}
