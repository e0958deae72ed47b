package dto

import (
	"encoding/json"
	"errors"
	"strings"

	"youth-connect/backend/internal/model"
)

// ── 成员模块 DTO ──

// CreateMemberRequest 创建成员档案请求
// userId 缺省时关联当前登录账号；显式为 null 时创建不关联账号的档案
type CreateMemberRequest struct {
	UserID   *uint                `json:"userId"`
	FullName string               `json:"fullName" binding:"required,max=128"`
	Category model.MemberCategory `json:"category" binding:"required,oneof=children youth adult"`
	Email    *string              `json:"email"    binding:"omitempty,email,max=255"`
	Phone    *string              `json:"phone"    binding:"omitempty,max=50"`
	Address  *string              `json:"address"`

	// Unlinked 请求体中 userId 显式为 null
	Unlinked bool `json:"-"`
}

// UnmarshalJSON 区分 userId 缺省与显式 null
func (r *CreateMemberRequest) UnmarshalJSON(data []byte) error {
	type plain CreateMemberRequest
	var body struct {
		plain
		UserID json.RawMessage `json:"userId"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return err
	}

	*r = CreateMemberRequest(body.plain)
	r.UserID = nil
	r.Unlinked = false

	raw := strings.TrimSpace(string(body.UserID))
	switch raw {
	case "":
	case "null":
		r.Unlinked = true
	default:
		var id uint
		if err := json.Unmarshal(body.UserID, &id); err != nil {
			var typeErr *json.UnmarshalTypeError
			if errors.As(err, &typeErr) {
				typeErr.Field = "userId"
			}
			return err
		}
		r.UserID = &id
	}
	return nil
}

// MemberListQuery 成员列表查询参数
// search 仅被接受，服务端始终返回全部成员
type MemberListQuery struct {
	Search string `form:"search"`
}
