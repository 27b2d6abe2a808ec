package service

import (
	"errors"
	"io"
	"log"
	"strings"

	"CampusVault/internal/cache"
	"CampusVault/internal/dto"
	"CampusVault/internal/repo"
	"CampusVault/internal/storage"
	"CampusVault/model"
	"CampusVault/utils"

	"github.com/google/uuid"
	"golang.org/x/net/context"
	"gorm.io/gorm"
)

// ResourceService is the content-addressed resource store. Each distinct
// content is kept exactly once, keyed by its SHA-256 digest.
type ResourceService struct {
	db          *gorm.DB
	store       storage.Store
	cache       *cache.Cache
	allowedExts map[string]bool
}

// NewResourceService creates a resource service.
func NewResourceService(db *gorm.DB, store storage.Store, c *cache.Cache, allowedExts []string) *ResourceService {
	exts := make(map[string]bool, len(allowedExts))
	for _, ext := range allowedExts {
		exts[strings.ToLower(ext)] = true
	}
	return &ResourceService{db: db, store: store, cache: c, allowedExts: exts}
}

// IngestInput describes one upload.
type IngestInput struct {
	FileName    string
	Size        int64
	Reader      io.Reader
	Title       string
	Description string
	Category    string
	UserID      uint64
}

// Ingest stores an upload unless identical content already exists.
//
// The ordering is write, then hash, then dedupe-check, then commit or
// discard: the digest is computed over the bytes as they landed in storage,
// not over the claimed upload.
func (s *ResourceService) Ingest(ctx context.Context, in *IngestInput) (*model.Resource, error) {
	if in.FileName == "" {
		return nil, NewValidationError("file", "No selected file")
	}
	ext := utils.FileExtension(in.FileName)
	if !s.allowedExts[ext] {
		return nil, NewValidationError("file", "File type not allowed")
	}

	fileName := utils.SanitizeFileName(in.FileName)
	storedName := strings.ReplaceAll(uuid.NewString(), "-", "") + "_" + fileName
	if err := s.store.Put(ctx, storedName, in.Reader, in.Size); err != nil {
		return nil, err
	}

	hash, size, err := s.hashStored(ctx, storedName)
	if err != nil {
		_ = s.store.Remove(ctx, storedName)
		return nil, err
	}

	if existing, err := s.findByHash(ctx, hash); err == nil {
		_ = s.store.Remove(ctx, storedName)
		return nil, &ConflictError{
			Message:       "Resource already exists",
			ResourceID:    existing.ID,
			ResourceTitle: existing.Title,
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		_ = s.store.Remove(ctx, storedName)
		return nil, err
	}

	title := in.Title
	if title == "" {
		title = fileName
	}
	category := in.Category
	if category == "" {
		category = "General"
	}
	resource := &model.Resource{
		Title:       title,
		Description: in.Description,
		Category:    category,
		FilePath:    storedName,
		FileName:    fileName,
		FileSize:    size,
		FileHash:    hash,
		UserID:      in.UserID,
	}
	if err := s.db.WithContext(ctx).Create(resource).Error; err != nil {
		_ = s.store.Remove(ctx, storedName)
		// A concurrent upload of the same content can pass the dedupe
		// check first; the unique digest index backstops it.
		if repo.IsDuplicateEntry(err) {
			if existing, findErr := s.findByHash(ctx, hash); findErr == nil {
				return nil, &ConflictError{
					Message:       "Resource already exists",
					ResourceID:    existing.ID,
					ResourceTitle: existing.Title,
				}
			}
			return nil, &ConflictError{Message: "Resource already exists"}
		}
		return nil, err
	}
	s.cache.SetResourceIDByHash(ctx, hash, resource.ID)
	return resource, nil
}

// hashStored digests the bytes that actually landed in storage.
func (s *ResourceService) hashStored(ctx context.Context, storedName string) (string, int64, error) {
	reader, info, err := s.store.Open(ctx, storedName)
	if err != nil {
		return "", 0, err
	}
	defer reader.Close()
	hash, err := utils.HashReader(reader)
	if err != nil {
		return "", 0, err
	}
	return hash, info.Size, nil
}

func (s *ResourceService) findByHash(ctx context.Context, hash string) (*model.Resource, error) {
	if id, ok := s.cache.GetResourceIDByHash(ctx, hash); ok {
		var cached model.Resource
		err := s.db.WithContext(ctx).First(&cached, id).Error
		if err == nil {
			return &cached, nil
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.cache.InvalidateResourceHash(ctx, hash)
		} else {
			return nil, err
		}
	}
	var resource model.Resource
	if err := s.db.WithContext(ctx).Where("file_hash = ?", hash).First(&resource).Error; err != nil {
		return nil, err
	}
	s.cache.SetResourceIDByHash(ctx, hash, resource.ID)
	return &resource, nil
}

// Get loads one resource and bumps its download counter. The counter tracks
// metadata fetches, not byte transfers.
func (s *ResourceService) Get(ctx context.Context, id uint64) (*model.Resource, error) {
	result := s.db.WithContext(ctx).Model(&model.Resource{}).
		Where("id = ?", id).
		UpdateColumn("download_count", gorm.Expr("download_count + 1"))
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	var resource model.Resource
	if err := s.db.WithContext(ctx).Preload("Uploader").First(&resource, id).Error; err != nil {
		return nil, err
	}
	return &resource, nil
}

// List returns all resources with their uploaders.
func (s *ResourceService) List(ctx context.Context) ([]model.Resource, error) {
	var resources []model.Resource
	if err := s.db.WithContext(ctx).Preload("Uploader").Order("id asc").Find(&resources).Error; err != nil {
		return nil, err
	}
	return resources, nil
}

// Update mutates title, description or category. Only the uploader may.
func (s *ResourceService) Update(ctx context.Context, id, actorID uint64, req *dto.UpdateResourceRequest) (*model.Resource, error) {
	var resource model.Resource
	if err := s.db.WithContext(ctx).First(&resource, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if resource.UserID != actorID {
		return nil, ErrUnauthorized
	}
	if req.Title != nil && len(*req.Title) < 3 {
		return nil, NewValidationError("title", "Title must be at least 3 characters")
	}
	if req.Title != nil {
		resource.Title = *req.Title
	}
	if req.Description != nil {
		resource.Description = *req.Description
	}
	if req.Category != nil {
		resource.Category = *req.Category
	}
	if err := s.db.WithContext(ctx).Save(&resource).Error; err != nil {
		return nil, err
	}
	return &resource, nil
}

// Delete removes a resource and its backing bytes. Byte removal is
// best-effort: the metadata row goes away even if storage cleanup fails.
func (s *ResourceService) Delete(ctx context.Context, id, actorID uint64) error {
	var resource model.Resource
	if err := s.db.WithContext(ctx).First(&resource, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if resource.UserID != actorID {
		return ErrUnauthorized
	}
	if err := s.store.Remove(ctx, resource.FilePath); err != nil {
		log.Printf("remove stored bytes %s failed: %v", resource.FilePath, err)
	}
	if err := s.db.WithContext(ctx).Delete(&model.Resource{}, id).Error; err != nil {
		return err
	}
	s.cache.InvalidateResourceHash(ctx, resource.FileHash)
	return nil
}

// OpenStored streams stored bytes by generated name, returning the original
// file name for the download header.
func (s *ResourceService) OpenStored(ctx context.Context, storedName string) (io.ReadCloser, string, int64, error) {
	var resource model.Resource
	if err := s.db.WithContext(ctx).Where("file_path = ?", storedName).First(&resource).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", 0, ErrNotFound
		}
		return nil, "", 0, err
	}
	reader, info, err := s.store.Open(ctx, storedName)
	if err != nil {
		return nil, "", 0, ErrNotFound
	}
	return reader, resource.FileName, info.Size, nil
}
