package service

import (
	"context"
	"errors"

	"CampusVault/internal/dto"
	"CampusVault/model"

	"gorm.io/gorm"
)

// GroupService manages groups and their memberships.
type GroupService struct {
	db *gorm.DB
}

// NewGroupService creates a group service.
func NewGroupService(db *gorm.DB) *GroupService {
	return &GroupService{db: db}
}

// Create makes a group and the creator's owner membership in one
// transaction. A group without an owner membership is never observable.
func (s *GroupService) Create(ctx context.Context, req *dto.CreateGroupRequest, creatorID uint64) (*model.Group, error) {
	fields := map[string]string{}
	if req.Name == "" {
		fields["name"] = "Group name is required"
	}
	if req.Category == "" {
		fields["category"] = "Category is required"
	}
	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	group := &model.Group{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		CreatedBy:   creatorID,
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(group).Error; err != nil {
			return err
		}
		membership := &model.GroupMember{
			UserID:  creatorID,
			GroupID: group.ID,
			Role:    model.RoleOwner,
		}
		return tx.Create(membership).Error
	})
	if err != nil {
		return nil, err
	}
	return group, nil
}

// GroupInfo pairs a group with its computed projections.
type GroupInfo struct {
	Group       model.Group
	CreatorName string
	MemberCount int64
}

// List returns all groups with creator names and member counts. Counts come
// from one grouped query instead of a per-group lookup.
func (s *GroupService) List(ctx context.Context) ([]GroupInfo, error) {
	var groups []model.Group
	if err := s.db.WithContext(ctx).Preload("Creator").Order("id asc").Find(&groups).Error; err != nil {
		return nil, err
	}
	counts, err := s.memberCounts(ctx, nil)
	if err != nil {
		return nil, err
	}
	infos := make([]GroupInfo, 0, len(groups))
	for _, g := range groups {
		infos = append(infos, GroupInfo{
			Group:       g,
			CreatorName: g.Creator.UserName,
			MemberCount: counts[g.ID],
		})
	}
	return infos, nil
}

// Get returns one group with its projections.
func (s *GroupService) Get(ctx context.Context, id uint64) (*GroupInfo, error) {
	var group model.Group
	if err := s.db.WithContext(ctx).Preload("Creator").First(&group, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	counts, err := s.memberCounts(ctx, []uint64{id})
	if err != nil {
		return nil, err
	}
	return &GroupInfo{
		Group:       group,
		CreatorName: group.Creator.UserName,
		MemberCount: counts[id],
	}, nil
}

// Members returns a group's membership rows.
func (s *GroupService) Members(ctx context.Context, groupID uint64) ([]model.GroupMember, error) {
	var members []model.GroupMember
	if err := s.db.WithContext(ctx).Where("group_id = ?", groupID).Order("id asc").Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

type memberCountRow struct {
	GroupID uint64
	Count   int64
}

func (s *GroupService) memberCounts(ctx context.Context, groupIDs []uint64) (map[uint64]int64, error) {
	query := s.db.WithContext(ctx).Model(&model.GroupMember{}).
		Select("group_id, count(*) as count").
		Group("group_id")
	if len(groupIDs) > 0 {
		query = query.Where("group_id IN ?", groupIDs)
	}
	var rows []memberCountRow
	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}
	counts := make(map[uint64]int64, len(rows))
	for _, row := range rows {
		counts[row.GroupID] = row.Count
	}
	return counts, nil
}
