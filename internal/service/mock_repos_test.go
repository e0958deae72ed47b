package service

import (
	"context"
	"sort"
	"time"

	"gorm.io/gorm"

	"youth-connect/backend/internal/model"
	"youth-connect/backend/internal/repository"
	pkgerrors "youth-connect/backend/pkg/errors"
)

// ── Mock UserRepository ──

type mockUserRepo struct {
	users  map[uint]*model.User
	nextID uint
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[uint]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	for _, u := range m.users {
		if u.Username == user.Username {
			return gorm.ErrDuplicatedKey
		}
	}
	m.nextID++
	user.ID = m.nextID
	user.CreatedAt = time.Now()
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id uint) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) List(_ context.Context) ([]model.User, error) {
	result := make([]model.User, 0, len(m.users))
	for _, u := range m.users {
		result = append(result, *u)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockUserRepo) UpdatePermissions(_ context.Context, id uint, perms model.PermissionSet) (*model.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	u.Permissions = perms
	return u, nil
}

func (m *mockUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.users)), nil
}

// ── Mock MemberRepository ──

type mockMemberRepo struct {
	members map[uint]*model.Member
	users   *mockUserRepo
	nextID  uint
}

func newMockMemberRepo(users *mockUserRepo) *mockMemberRepo {
	return &mockMemberRepo{members: make(map[uint]*model.Member), users: users}
}

func (m *mockMemberRepo) Create(_ context.Context, member *model.Member) error {
	if member.UserID != nil {
		if _, ok := m.users.users[*member.UserID]; !ok {
			return pkgerrors.ErrIntegrity
		}
		for _, existing := range m.members {
			if existing.UserID != nil && *existing.UserID == *member.UserID {
				return gorm.ErrDuplicatedKey
			}
		}
	}
	m.nextID++
	member.ID = m.nextID
	member.CreatedAt = time.Now()
	m.members[member.ID] = member
	return nil
}

func (m *mockMemberRepo) GetByID(_ context.Context, id uint) (*model.Member, error) {
	if mem, ok := m.members[id]; ok {
		return mem, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockMemberRepo) GetByUserID(_ context.Context, userID uint) (*model.Member, error) {
	for _, mem := range m.members {
		if mem.UserID != nil && *mem.UserID == userID {
			return mem, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockMemberRepo) List(_ context.Context, _ string) ([]model.Member, error) {
	result := make([]model.Member, 0, len(m.members))
	for _, mem := range m.members {
		result = append(result, *mem)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// ── Mock AnnouncementRepository ──

type mockAnnouncementRepo struct {
	items  map[uint]*model.Announcement
	users  *mockUserRepo
	nextID uint
}

func newMockAnnouncementRepo(users *mockUserRepo) *mockAnnouncementRepo {
	return &mockAnnouncementRepo{items: make(map[uint]*model.Announcement), users: users}
}

func (m *mockAnnouncementRepo) Create(_ context.Context, a *model.Announcement) error {
	if _, ok := m.users.users[a.AuthorID]; !ok {
		return pkgerrors.ErrIntegrity
	}
	m.nextID++
	a.ID = m.nextID
	a.CreatedAt = time.Now()
	m.items[a.ID] = a
	return nil
}

func (m *mockAnnouncementRepo) GetByID(_ context.Context, id uint) (*model.Announcement, error) {
	a, ok := m.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *a
	cp.Author = m.users.users[a.AuthorID]
	return &cp, nil
}

func (m *mockAnnouncementRepo) List(_ context.Context) ([]model.Announcement, error) {
	result := make([]model.Announcement, 0, len(m.items))
	for _, a := range m.items {
		cp := *a
		cp.Author = m.users.users[a.AuthorID]
		result = append(result, cp)
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

// ── Mock CommentRepository ──

type mockCommentRepo struct {
	items  map[uint]*model.Comment
	nextID uint
}

func newMockCommentRepo() *mockCommentRepo {
	return &mockCommentRepo{items: make(map[uint]*model.Comment)}
}

func (m *mockCommentRepo) Create(_ context.Context, c *model.Comment) error {
	m.nextID++
	c.ID = m.nextID
	c.CreatedAt = time.Now()
	m.items[c.ID] = c
	return nil
}

func (m *mockCommentRepo) GetByID(_ context.Context, id uint) (*model.Comment, error) {
	if c, ok := m.items[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCommentRepo) ListByAnnouncement(_ context.Context, announcementID uint) ([]model.Comment, error) {
	result := make([]model.Comment, 0)
	for _, c := range m.items {
		if c.AnnouncementID == announcementID {
			result = append(result, *c)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	return result, nil
}

// ── Mock GroupRepository ──

type mockGroupRepo struct {
	groups map[uint]*model.Group
	nextID uint
}

func newMockGroupRepo() *mockGroupRepo {
	return &mockGroupRepo{groups: make(map[uint]*model.Group)}
}

func (m *mockGroupRepo) Create(_ context.Context, g *model.Group) error {
	m.nextID++
	g.ID = m.nextID
	g.MemberCount = 0
	g.CreatedAt = time.Now()
	m.groups[g.ID] = g
	return nil
}

func (m *mockGroupRepo) GetByID(_ context.Context, id uint) (*model.Group, error) {
	if g, ok := m.groups[id]; ok {
		return g, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockGroupRepo) List(_ context.Context) ([]model.Group, error) {
	result := make([]model.Group, 0, len(m.groups))
	for _, g := range m.groups {
		result = append(result, *g)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// ── Mock GroupMemberRepository ──

type mockGroupMemberRepo struct {
	items   map[uint]*model.GroupMember
	groups  *mockGroupRepo
	members *mockMemberRepo
	nextID  uint
}

func newMockGroupMemberRepo(groups *mockGroupRepo, members *mockMemberRepo) *mockGroupMemberRepo {
	return &mockGroupMemberRepo{items: make(map[uint]*model.GroupMember), groups: groups, members: members}
}

func (m *mockGroupMemberRepo) Add(_ context.Context, gm *model.GroupMember) error {
	g, ok := m.groups.groups[gm.GroupID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if _, ok := m.members.members[gm.MemberID]; !ok {
		return pkgerrors.ErrIntegrity
	}
	for _, existing := range m.items {
		if existing.GroupID == gm.GroupID && existing.MemberID == gm.MemberID {
			return gorm.ErrDuplicatedKey
		}
	}
	if gm.Status == "" {
		gm.Status = model.GroupMemberPending
	}
	m.nextID++
	gm.ID = m.nextID
	gm.JoinedAt = time.Now()
	m.items[gm.ID] = gm
	g.MemberCount++
	return nil
}

func (m *mockGroupMemberRepo) GetByID(_ context.Context, id uint) (*model.GroupMember, error) {
	if gm, ok := m.items[id]; ok {
		return gm, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockGroupMemberRepo) Exists(_ context.Context, groupID, memberID uint) (bool, error) {
	for _, gm := range m.items {
		if gm.GroupID == groupID && gm.MemberID == memberID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockGroupMemberRepo) UpdateStatus(_ context.Context, id uint, status model.GroupMemberStatus) (*model.GroupMember, error) {
	gm, ok := m.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	gm.Status = status
	return gm, nil
}

func (m *mockGroupMemberRepo) ListByGroup(_ context.Context, groupID uint) ([]model.GroupMember, error) {
	result := make([]model.GroupMember, 0)
	for _, gm := range m.items {
		if gm.GroupID == groupID {
			cp := *gm
			cp.Member = m.members.members[gm.MemberID]
			result = append(result, cp)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// ── 测试辅助 ──

type mockRepos struct {
	users         *mockUserRepo
	members       *mockMemberRepo
	announcements *mockAnnouncementRepo
	comments      *mockCommentRepo
	groups        *mockGroupRepo
	groupMembers  *mockGroupMemberRepo
}

func newMockRepository() (*repository.Repository, *mockRepos) {
	users := newMockUserRepo()
	members := newMockMemberRepo(users)
	groups := newMockGroupRepo()
	m := &mockRepos{
		users:         users,
		members:       members,
		announcements: newMockAnnouncementRepo(users),
		comments:      newMockCommentRepo(),
		groups:        groups,
		groupMembers:  newMockGroupMemberRepo(groups, members),
	}
	return &repository.Repository{
		User:         m.users,
		Member:       m.members,
		Announcement: m.announcements,
		Comment:      m.comments,
		Group:        m.groups,
		GroupMember:  m.groupMembers,
	}, m
}

func seedUser(m *mockRepos, username string, role model.Role) *model.User {
	u := &model.User{Username: username, Password: "x", Role: role}
	_ = m.users.Create(context.Background(), u)
	return u
}

func seedMember(m *mockRepos, name string, userID *uint) *model.Member {
	mem := &model.Member{FullName: name, Category: model.CategoryYouth, UserID: userID}
	_ = m.members.Create(context.Background(), mem)
	return mem
}

func actorOf(u *model.User) Actor {
	return Actor{UserID: u.ID, Role: u.Role}
}
