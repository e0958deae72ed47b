package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"youth-connect/backend/config"
	"youth-connect/backend/internal/api/middleware"
	"youth-connect/backend/internal/dto"
	"youth-connect/backend/internal/model"
	"youth-connect/backend/internal/service"
	"youth-connect/backend/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ═══════════════════════════════════════════════════════════
// Mock Services
// ═══════════════════════════════════════════════════════════

// ── Mock AuthService ──

type mockAuthService struct {
	loginResult   *service.LoginResult
	loginErr      error
	logoutToken   string
	logoutErr     error
	currentResult *model.User
	currentErr    error
}

func (m *mockAuthService) Login(_ context.Context, _ *dto.LoginRequest) (*service.LoginResult, error) {
	return m.loginResult, m.loginErr
}
func (m *mockAuthService) Logout(_ context.Context, token string) error {
	m.logoutToken = token
	return m.logoutErr
}
func (m *mockAuthService) ResolveSession(_ context.Context, _ string) (*model.User, error) {
	return nil, service.ErrSessionInvalid
}
func (m *mockAuthService) GetCurrentUser(_ context.Context, _ uint) (*model.User, error) {
	return m.currentResult, m.currentErr
}

// ── Mock UserService ──

type mockUserService struct {
	listResult   []model.User
	createResult *model.User
	createErr    error
	createActor  service.Actor
	updateResult *model.User
	updateErr    error
	updatePerms  model.PermissionSet
}

func (m *mockUserService) List(_ context.Context) ([]model.User, error) {
	return m.listResult, nil
}
func (m *mockUserService) Create(_ context.Context, actor service.Actor, _ *dto.CreateUserRequest) (*model.User, error) {
	m.createActor = actor
	return m.createResult, m.createErr
}
func (m *mockUserService) UpdatePermissions(_ context.Context, _ uint, perms model.PermissionSet) (*model.User, error) {
	m.updatePerms = perms
	return m.updateResult, m.updateErr
}

// ── Mock MemberService ──

type mockMemberService struct {
	getResult    *model.Member
	getErr       error
	createResult *model.Member
	createErr    error
}

func (m *mockMemberService) List(_ context.Context, _ string) ([]model.Member, error) {
	return []model.Member{}, nil
}
func (m *mockMemberService) Get(_ context.Context, _ uint) (*model.Member, error) {
	return m.getResult, m.getErr
}
func (m *mockMemberService) Create(_ context.Context, _ service.Actor, _ *dto.CreateMemberRequest) (*model.Member, error) {
	return m.createResult, m.createErr
}

// ── Mock AnnouncementService / CommentService ──

type mockAnnouncementService struct {
	createReq *dto.CreateAnnouncementRequest
	actor     service.Actor
}

func (m *mockAnnouncementService) List(_ context.Context) ([]model.Announcement, error) {
	return []model.Announcement{}, nil
}
func (m *mockAnnouncementService) Create(_ context.Context, actor service.Actor, req *dto.CreateAnnouncementRequest) (*model.Announcement, error) {
	m.createReq = req
	m.actor = actor
	return &model.Announcement{BaseModel: model.BaseModel{ID: 1}, Title: req.Title, Content: req.Content, AuthorID: actor.UserID}, nil
}

type mockCommentService struct {
	createErr error
}

func (m *mockCommentService) ListByAnnouncement(_ context.Context, _ uint) ([]model.Comment, error) {
	return []model.Comment{}, nil
}
func (m *mockCommentService) Create(_ context.Context, actor service.Actor, req *dto.CreateCommentRequest) (*model.Comment, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	return &model.Comment{AnnouncementID: req.AnnouncementID, AuthorID: actor.UserID, Content: req.Content}, nil
}

// ── Mock GroupService ──

type mockGroupService struct {
	joinReq      *dto.JoinGroupRequest
	joinErr      error
	updateResult *model.GroupMember
	updateErr    error
	membersErr   error
}

func (m *mockGroupService) List(_ context.Context) ([]model.Group, error) {
	return []model.Group{}, nil
}
func (m *mockGroupService) Create(_ context.Context, req *dto.CreateGroupRequest) (*model.Group, error) {
	return &model.Group{Name: req.Name, Description: req.Description}, nil
}
func (m *mockGroupService) Join(_ context.Context, _ service.Actor, groupID uint, req *dto.JoinGroupRequest) (*model.GroupMember, error) {
	m.joinReq = req
	if m.joinErr != nil {
		return nil, m.joinErr
	}
	return &model.GroupMember{ID: 1, GroupID: groupID, MemberID: 9, Status: model.GroupMemberPending}, nil
}
func (m *mockGroupService) ListMembers(_ context.Context, _ uint) ([]model.GroupMember, error) {
	return []model.GroupMember{}, m.membersErr
}
func (m *mockGroupService) UpdateMemberStatus(_ context.Context, _ uint, _ model.GroupMemberStatus) (*model.GroupMember, error) {
	return m.updateResult, m.updateErr
}

// ── Mock ExportService ──

type mockExportService struct {
	buf      *bytes.Buffer
	filename string
	err      error
}

func (m *mockExportService) ExportMembers(_ context.Context) (*bytes.Buffer, string, error) {
	return m.buf, m.filename, m.err
}
func (m *mockExportService) ExportGroupRoster(_ context.Context, _ uint) (*bytes.Buffer, string, error) {
	return m.buf, m.filename, m.err
}

// ═══════════════════════════════════════════════════════════
// Helpers
// ═══════════════════════════════════════════════════════════

func setupGin() (*gin.Engine, *gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, r := gin.CreateTestContext(w)
	return r, c, w
}

func setAuth(c *gin.Context, role model.Role) {
	c.Set(middleware.CtxUserID, uint(7))
	c.Set(middleware.CtxRole, role)
	c.Set(middleware.CtxPermissions, model.PermissionSet(0))
}

func jsonBody(v interface{}) io.Reader {
	b, _ := json.Marshal(v)
	return bytes.NewReader(b)
}

func parseError(w *httptest.ResponseRecorder) response.ErrorBody {
	var body response.ErrorBody
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return body
}

func testAuthConfig() *config.AuthConfig {
	return &config.AuthConfig{
		SessionSecret: "test-secret-0123456789",
		SessionTTL:    time.Hour,
		Cookie:        config.CookieConfig{Name: "yc_session", SameSite: "Lax"},
	}
}

// ═══════════════════════════════════════════════════════════
// AuthHandler Tests
// ═══════════════════════════════════════════════════════════

func TestAuthHandler_Login_Success(t *testing.T) {
	mock := &mockAuthService{loginResult: &service.LoginResult{
		Token:     "signed-token",
		ExpiresAt: time.Now().Add(time.Hour),
		User:      &model.User{BaseModel: model.BaseModel{ID: 3}, Username: "alice", Password: "hash", Role: model.RoleAdmin},
	}}
	h := NewAuthHandler(mock, testAuthConfig())

	_, c, w := setupGin()
	c.Request = httptest.NewRequest(http.MethodPost, "/api/login", jsonBody(map[string]string{"username": "alice", "password": "pw"}))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Login(c)

	if w.Code != http.StatusOK {
		t.Fatalf("期望 200，实际 %d: %s", w.Code, w.Body.String())
	}
	cookies := w.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != "yc_session" || cookies[0].Value != "signed-token" || !cookies[0].HttpOnly {
		t.Errorf("会话 Cookie 不符: %+v", cookies)
	}

	var body map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["username"] != "alice" {
		t.Errorf("期望返回用户，实际 %v", body)
	}
	if _, leaked := body["password"]; leaked {
		t.Error("响应不应包含密码")
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{loginErr: service.ErrInvalidCredentials}, testAuthConfig())

	_, c, w := setupGin()
	c.Request = httptest.NewRequest(http.MethodPost, "/api/login", jsonBody(map[string]string{"username": "a", "password": "b"}))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Login(c)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("期望 401，实际 %d", w.Code)
	}
	if parseError(w).Code != 11001 {
		t.Errorf("期望错误码 11001，实际 %d", parseError(w).Code)
	}
}

func TestAuthHandler_Login_MissingField(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{}, testAuthConfig())

	_, c, w := setupGin()
	c.Request = httptest.NewRequest(http.MethodPost, "/api/login", jsonBody(map[string]string{"username": "a"}))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Login(c)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("期望 400，实际 %d", w.Code)
	}
	body := parseError(w)
	if body.Field != "password" || body.Message != "password is required" {
		t.Errorf("期望首个失败字段 password，实际 %+v", body)
	}
}

func TestAuthHandler_Logout_ClearsCookie(t *testing.T) {
	mock := &mockAuthService{}
	h := NewAuthHandler(mock, testAuthConfig())

	_, c, w := setupGin()
	c.Request = httptest.NewRequest(http.MethodPost, "/api/logout", nil)
	c.Request.AddCookie(&http.Cookie{Name: "yc_session", Value: "tok"})

	h.Logout(c)

	if w.Code != http.StatusOK {
		t.Errorf("期望 200，实际 %d", w.Code)
	}
	if mock.logoutToken != "tok" {
		t.Errorf("期望注销 Cookie 中的令牌，实际 %q", mock.logoutToken)
	}
	cookies := w.Result().Cookies()
	if len(cookies) != 1 || cookies[0].MaxAge >= 0 {
		t.Errorf("期望清除 Cookie，实际 %+v", cookies)
	}
}

func TestAuthHandler_CurrentUser_Unauthenticated(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{}, testAuthConfig())

	_, c, w := setupGin()
	c.Request = httptest.NewRequest(http.MethodGet, "/api/user", nil)

	h.CurrentUser(c)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("期望 401，实际 %d", w.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// UserHandler Tests
// ═══════════════════════════════════════════════════════════

func TestUserHandler_CreateUser_PassesActor(t *testing.T) {
	mock := &mockUserService{createResult: &model.User{BaseModel: model.BaseModel{ID: 10}, Username: "new", Role: model.RoleMember}}
	h := NewUserHandler(mock)

	_, c, w := setupGin()
	c.Request = httptest.NewRequest(http.MethodPost, "/api/users", jsonBody(map[string]string{"username": "new", "password": "pw"}))
	c.Request.Header.Set("Content-Type", "application/json")
	setAuth(c, model.RoleAdmin)

	h.CreateUser(c)

	if w.Code != http.StatusCreated {
		t.Fatalf("期望 201，实际 %d: %s", w.Code, w.Body.String())
	}
	if mock.createActor.UserID != 7 || mock.createActor.Role != model.RoleAdmin {
		t.Errorf("Actor 不符: %+v", mock.createActor)
	}
}

func TestUserHandler_CreateUser_InvalidRole(t *testing.T) {
	h := NewUserHandler(&mockUserService{})

	_, c, w := setupGin()
	c.Request = httptest.NewRequest(http.MethodPost, "/api/users", jsonBody(map[string]string{"username": "x", "password": "y", "role": "owner"}))
	c.Request.Header.Set("Content-Type", "application/json")
	setAuth(c, model.RoleAdmin)

	h.CreateUser(c)

	if w.Code != http.StatusBadRequest || parseError(w).Field != "role" {
		t.Errorf("期望 role 字段 400，实际 %d %s", w.Code, w.Body.String())
	}
}

func TestUserHandler_CreateUser_Escalation(t *testing.T) {
	h := NewUserHandler(&mockUserService{createErr: service.ErrRoleEscalation})

	_, c, w := setupGin()
	c.Request = httptest.NewRequest(http.MethodPost, "/api/users", jsonBody(map[string]string{"username": "x", "password": "y", "role": "system_admin"}))
	c.Request.Header.Set("Content-Type", "application/json")
	setAuth(c, model.RoleAdmin)

	h.CreateUser(c)

	if w.Code != http.StatusForbidden {
		t.Errorf("期望 403，实际 %d", w.Code)
	}
}

func TestUserHandler_UpdatePermissions(t *testing.T) {
	mock := &mockUserService{updateResult: &model.User{BaseModel: model.BaseModel{ID: 2}}}
	h := NewUserHandler(mock)

	r, _, _ := setupGin()
	r.PATCH("/api/users/:id/permissions", h.UpdatePermissions)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/users/2/permissions", jsonBody(map[string][]string{"permissions": {"manage_members", "create_user"}}))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("期望 200，实际 %d: %s", w.Code, w.Body.String())
	}
	want := model.NewPermissionSet(model.PermManageMembers, model.PermCreateUser)
	if mock.updatePerms != want {
		t.Errorf("期望 %v，实际 %v", want.Names(), mock.updatePerms.Names())
	}
}

func TestUserHandler_UpdatePermissions_UnknownFlag(t *testing.T) {
	h := NewUserHandler(&mockUserService{})

	r, _, _ := setupGin()
	r.PATCH("/api/users/:id/permissions", h.UpdatePermissions)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/users/2/permissions", jsonBody(map[string][]string{"permissions": {"launch_rockets"}}))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest || parseError(w).Field != "permissions" {
		t.Errorf("未知权限期望 400 permissions，实际 %d %s", w.Code, w.Body.String())
	}
}

func TestUserHandler_UpdatePermissions_MissingBodyAndBadID(t *testing.T) {
	h := NewUserHandler(&mockUserService{updateErr: service.ErrUserNotFound})

	r, _, _ := setupGin()
	r.PATCH("/api/users/:id/permissions", h.UpdatePermissions)

	cases := []struct {
		path string
		body interface{}
		want int
	}{
		{"/api/users/abc/permissions", map[string][]string{"permissions": {}}, http.StatusBadRequest},
		{"/api/users/2/permissions", map[string]string{}, http.StatusBadRequest},
		{"/api/users/99/permissions", map[string][]string{"permissions": {}}, http.StatusNotFound},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPatch, tc.path, jsonBody(tc.body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		if w.Code != tc.want {
			t.Errorf("%s 期望 %d，实际 %d", tc.path, tc.want, w.Code)
		}
	}
}

// ═══════════════════════════════════════════════════════════
// MemberHandler Tests
// ═══════════════════════════════════════════════════════════

func TestMemberHandler_GetMember_NotFound(t *testing.T) {
	h := NewMemberHandler(&mockMemberService{getErr: service.ErrMemberNotFound})

	r, _, _ := setupGin()
	r.GET("/api/members/:id", h.GetMember)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/members/5", nil))

	if w.Code != http.StatusNotFound {
		t.Errorf("期望 404，实际 %d", w.Code)
	}
}

func TestMemberHandler_CreateMember_Validation(t *testing.T) {
	h := NewMemberHandler(&mockMemberService{})

	cases := []struct {
		name  string
		body  map[string]interface{}
		field string
	}{
		{"缺少姓名", map[string]interface{}{"category": "youth"}, "fullName"},
		{"类别非法", map[string]interface{}{"fullName": "A", "category": "elder"}, "category"},
		{"邮箱非法", map[string]interface{}{"fullName": "A", "category": "adult", "email": "nope"}, "email"},
		{"类型错误", map[string]interface{}{"fullName": "A", "category": "adult", "userId": "seven"}, "userId"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, c, w := setupGin()
			c.Request = httptest.NewRequest(http.MethodPost, "/api/members", jsonBody(tc.body))
			c.Request.Header.Set("Content-Type", "application/json")
			setAuth(c, model.RoleMember)

			h.CreateMember(c)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("期望 400，实际 %d", w.Code)
			}
			if got := parseError(w).Field; got != tc.field {
				t.Errorf("期望字段 %s，实际 %s", tc.field, got)
			}
		})
	}
}

func TestMemberHandler_CreateMember_ErrorMapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{service.ErrMemberProfileExists, http.StatusBadRequest},
		{service.ErrMemberUserNotFound, http.StatusBadRequest},
		{service.ErrMemberForbidden, http.StatusForbidden},
		{errors.New("db down"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		h := NewMemberHandler(&mockMemberService{createErr: tc.err})
		_, c, w := setupGin()
		c.Request = httptest.NewRequest(http.MethodPost, "/api/members", jsonBody(map[string]string{"fullName": "A", "category": "adult"}))
		c.Request.Header.Set("Content-Type", "application/json")
		setAuth(c, model.RoleMember)

		h.CreateMember(c)

		if w.Code != tc.want {
			t.Errorf("%v 期望 %d，实际 %d", tc.err, tc.want, w.Code)
		}
	}
}

// ═══════════════════════════════════════════════════════════
// AnnouncementHandler Tests
// ═══════════════════════════════════════════════════════════

func TestAnnouncementHandler_Create_IgnoresBodyAuthor(t *testing.T) {
	annMock := &mockAnnouncementService{}
	h := NewAnnouncementHandler(annMock, &mockCommentService{})

	_, c, w := setupGin()
	c.Request = httptest.NewRequest(http.MethodPost, "/api/announcements", jsonBody(map[string]interface{}{
		"title": "t", "content": "c", "authorId": 999,
	}))
	c.Request.Header.Set("Content-Type", "application/json")
	setAuth(c, model.RoleMember)

	h.CreateAnnouncement(c)

	if w.Code != http.StatusCreated {
		t.Fatalf("期望 201，实际 %d", w.Code)
	}
	var body model.Announcement
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body.AuthorID != 7 {
		t.Errorf("作者应取自会话 7，实际 %d", body.AuthorID)
	}
}

func TestAnnouncementHandler_CreateComment_Errors(t *testing.T) {
	cases := []struct {
		err   error
		field string
	}{
		{service.ErrCommentAnnouncementMissing, "announcementId"},
		{service.ErrInvalidParentComment, "parentId"},
	}
	for _, tc := range cases {
		h := NewAnnouncementHandler(&mockAnnouncementService{}, &mockCommentService{createErr: tc.err})
		_, c, w := setupGin()
		c.Request = httptest.NewRequest(http.MethodPost, "/api/comments", jsonBody(map[string]interface{}{"announcementId": 1, "content": "x"}))
		c.Request.Header.Set("Content-Type", "application/json")
		setAuth(c, model.RoleMember)

		h.CreateComment(c)

		if w.Code != http.StatusBadRequest || parseError(w).Field != tc.field {
			t.Errorf("期望 400 %s，实际 %d %s", tc.field, w.Code, w.Body.String())
		}
	}
}

// ═══════════════════════════════════════════════════════════
// GroupHandler Tests
// ═══════════════════════════════════════════════════════════

func TestGroupHandler_JoinGroup_EmptyBody(t *testing.T) {
	mock := &mockGroupService{}
	h := NewGroupHandler(mock)

	r, _, _ := setupGin()
	r.POST("/api/groups/:id/members", func(c *gin.Context) { setAuth(c, model.RoleMember) }, h.JoinGroup)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/groups/3/members", nil))

	if w.Code != http.StatusCreated {
		t.Fatalf("空请求体期望 201，实际 %d: %s", w.Code, w.Body.String())
	}
	if mock.joinReq == nil || mock.joinReq.MemberID != nil {
		t.Errorf("空请求体应得到空 memberId，实际 %+v", mock.joinReq)
	}
}

func TestGroupHandler_JoinGroup_ErrorMapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{service.ErrGroupNotFound, http.StatusNotFound},
		{service.ErrMemberProfileRequired, http.StatusBadRequest},
		{service.ErrAlreadyInGroup, http.StatusBadRequest},
		{service.ErrJoinForbidden, http.StatusForbidden},
	}
	for _, tc := range cases {
		h := NewGroupHandler(&mockGroupService{joinErr: tc.err})
		r, _, _ := setupGin()
		r.POST("/api/groups/:id/members", func(c *gin.Context) { setAuth(c, model.RoleMember) }, h.JoinGroup)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/groups/3/members", jsonBody(map[string]int{"memberId": 4}))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != tc.want {
			t.Errorf("%v 期望 %d，实际 %d", tc.err, tc.want, w.Code)
		}
	}
}

func TestGroupHandler_UpdateStatus(t *testing.T) {
	h := NewGroupHandler(&mockGroupService{updateErr: service.ErrGroupMemberNotFound})

	r, _, _ := setupGin()
	r.PATCH("/api/group-members/:id/status", h.UpdateGroupMemberStatus)

	cases := []struct {
		body string
		want int
	}{
		{`{"status":"rejected"}`, http.StatusBadRequest},
		{`{}`, http.StatusBadRequest},
		{`{"status":"approved"}`, http.StatusNotFound},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPatch, "/api/group-members/1/status", bytes.NewBufferString(tc.body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		if w.Code != tc.want {
			t.Errorf("%s 期望 %d，实际 %d", tc.body, tc.want, w.Code)
		}
	}
}

// ═══════════════════════════════════════════════════════════
// ExportHandler Tests
// ═══════════════════════════════════════════════════════════

func TestExportHandler_ExportGroupRoster(t *testing.T) {
	h := NewExportHandler(&mockExportService{buf: bytes.NewBufferString("xlsx"), filename: "youth-roster.xlsx"})

	r, _, _ := setupGin()
	r.GET("/api/groups/:id/members/export", h.ExportGroupRoster)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/groups/1/members/export", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("期望 200，实际 %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != xlsxContentType {
		t.Errorf("Content-Type 不符: %s", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); cd != "attachment; filename*=UTF-8''youth-roster.xlsx" {
		t.Errorf("Content-Disposition 不符: %s", cd)
	}
}

func TestExportHandler_GroupNotFound(t *testing.T) {
	h := NewExportHandler(&mockExportService{err: service.ErrGroupNotFound})

	r, _, _ := setupGin()
	r.GET("/api/groups/:id/members/export", h.ExportGroupRoster)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/groups/1/members/export", nil))

	if w.Code != http.StatusNotFound {
		t.Errorf("期望 404，实际 %d", w.Code)
	}
}
