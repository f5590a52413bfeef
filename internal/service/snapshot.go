package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path"
	"time"

	"github.com/google/uuid"

	"pointboard/internal/model"
	"pointboard/internal/repository"
	"pointboard/internal/storage"
)

// Snapshot is the document written to object storage.
type Snapshot struct {
	TakenAt time.Time     `json:"takenAt"`
	Points  []model.Point `json:"points"`
}

// SnapshotResult describes a stored snapshot.
type SnapshotResult struct {
	Key      string `json:"key"`
	URL      string `json:"url"`
	Points   int    `json:"points"`
	Comments int    `json:"comments"`
}

// SnapshotService exports the whole board to object storage.
type SnapshotService interface {
	// Take uploads a JSON snapshot of every point with its comments and returns
	// a time-limited download URL.
	Take(ctx context.Context) (*SnapshotResult, error)
	// Open streams a previously taken snapshot. The caller closes the reader.
	Open(ctx context.Context, id uuid.UUID) (io.ReadCloser, storage.ObjectInfo, error)
}

type snapshotService struct {
	store    storage.Storage
	points   repository.PointRepository
	comments repository.CommentRepository
	expiry   time.Duration
	now      func() time.Time
}

// NewSnapshotService constructs a new SnapshotService.
func NewSnapshotService(store storage.Storage, points repository.PointRepository, comments repository.CommentRepository, expiry time.Duration) SnapshotService {
	return &snapshotService{
		store:    store,
		points:   points,
		comments: comments,
		expiry:   expiry,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *snapshotService) Take(ctx context.Context) (*SnapshotResult, error) {
	points, err := s.points.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list points: %w", err)
	}
	comments, err := s.comments.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}

	index := make(map[uuid.UUID]int, len(points))
	for i := range points {
		points[i].Comments = []model.Comment{}
		index[points[i].ID] = i
	}
	attached := 0
	for _, c := range comments {
		// comments of deleted points are not part of the board
		if i, ok := index[c.PointID]; ok {
			points[i].Comments = append(points[i].Comments, c)
			attached++
		}
	}

	body, err := json.Marshal(Snapshot{TakenAt: s.now(), Points: points})
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}

	key := snapshotKey(uuid.New())
	info, err := s.store.Put(ctx, key, bytes.NewReader(body), storage.PutObjectOptions{
		Size:        int64(len(body)),
		ContentType: "application/json",
	})
	if err != nil {
		return nil, fmt.Errorf("upload snapshot: %w", err)
	}

	url, err := s.store.PresignGet(ctx, info.Key, s.expiry)
	if err != nil {
		// Rollback: an unreachable snapshot is useless
		if delErr := s.store.Delete(ctx, info.Key); delErr != nil {
			return nil, fmt.Errorf("presign failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("presign snapshot: %w", err)
	}

	return &SnapshotResult{
		Key:      info.Key,
		URL:      url,
		Points:   len(points),
		Comments: attached,
	}, nil
}

func (s *snapshotService) Open(ctx context.Context, id uuid.UUID) (io.ReadCloser, storage.ObjectInfo, error) {
	rc, info, err := s.store.Get(ctx, snapshotKey(id))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, storage.ObjectInfo{}, ErrNotFound
		}
		return nil, storage.ObjectInfo{}, fmt.Errorf("fetch snapshot: %w", err)
	}
	return rc, info, nil
}

func snapshotKey(id uuid.UUID) string {
	return path.Join("snapshots", id.String()+".json")
}
