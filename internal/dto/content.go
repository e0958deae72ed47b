package dto

// ── 公告与评论 DTO ──

// CreateAnnouncementRequest 发布公告请求
// 作者始终取自会话，请求体中的 authorId 会被忽略
type CreateAnnouncementRequest struct {
	Title   string `json:"title"   binding:"required,max=255"`
	Content string `json:"content" binding:"required"`
}

// CreateCommentRequest 发表评论请求
type CreateCommentRequest struct {
	AnnouncementID uint   `json:"announcementId" binding:"required"`
	ParentID       *uint  `json:"parentId"`
	Content        string `json:"content"        binding:"required"`
}
