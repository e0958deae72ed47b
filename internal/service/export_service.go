package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/gosimple/slug"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"youth-connect/backend/internal/model"
	"youth-connect/backend/internal/repository"
)

// ── 导出模块业务错误 ──

var ErrExportGenerateFail = errors.New("Failed to generate spreadsheet")

// ExportService 导出业务接口
//
// 导出以 bytes.Buffer 返回，由 Handler 层设置响应头后写入 Response
type ExportService interface {
	// ExportMembers 导出成员通讯录
	ExportMembers(ctx context.Context) (*bytes.Buffer, string, error)
	// ExportGroupRoster 导出小组名单，文件名取小组名的 slug
	ExportGroupRoster(ctx context.Context, groupID uint) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

var memberHeaders = []string{"ID", "Full name", "Category", "Email", "Phone", "Address", "Created at"}

func (s *exportService) ExportMembers(ctx context.Context) (*bytes.Buffer, string, error) {
	members, err := s.repo.Member.List(ctx, "")
	if err != nil {
		s.logger.Error("查询成员列表失败", zap.Error(err))
		return nil, "", err
	}

	rows := make([][]interface{}, 0, len(members))
	for _, m := range members {
		rows = append(rows, memberRow(&m))
	}

	buf, err := s.writeSheet("Members", memberHeaders, rows)
	if err != nil {
		return nil, "", err
	}
	return buf, "member-directory.xlsx", nil
}

var rosterHeaders = []string{"Membership ID", "Member ID", "Full name", "Category", "Email", "Phone", "Status", "Joined at"}

func (s *exportService) ExportGroupRoster(ctx context.Context, groupID uint) (*bytes.Buffer, string, error) {
	group, err := s.repo.Group.GetByID(ctx, groupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrGroupNotFound
		}
		s.logger.Error("查询小组失败", zap.Error(err))
		return nil, "", err
	}

	list, err := s.repo.GroupMember.ListByGroup(ctx, groupID)
	if err != nil {
		s.logger.Error("查询小组成员失败", zap.Uint("group_id", groupID), zap.Error(err))
		return nil, "", err
	}

	rows := make([][]interface{}, 0, len(list))
	for _, gm := range list {
		row := []interface{}{gm.ID, gm.MemberID, "", "", "", "", string(gm.Status), gm.JoinedAt.Format("2006-01-02 15:04")}
		if gm.Member != nil {
			row[2] = gm.Member.FullName
			row[3] = string(gm.Member.Category)
			row[4] = deref(gm.Member.Email)
			row[5] = deref(gm.Member.Phone)
		}
		rows = append(rows, row)
	}

	buf, err := s.writeSheet("Roster", rosterHeaders, rows)
	if err != nil {
		return nil, "", err
	}
	return buf, rosterFilename(group), nil
}

// writeSheet 生成单 Sheet 工作簿：首行表头加粗，其余为数据行
// 任一单元格写入失败即放弃整个文件，不输出残缺表格
func (s *exportService) writeSheet(sheet string, headers []string, rows [][]interface{}) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := fillSheet(f, sheet, headers, rows); err != nil {
		s.logger.Error("生成 Excel 失败", zap.String("sheet", sheet), zap.Error(err))
		return nil, ErrExportGenerateFail
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("写入 Excel 失败", zap.Error(err))
		return nil, ErrExportGenerateFail
	}
	return buf, nil
}

func fillSheet(f *excelize.File, sheet string, headers []string, rows [][]interface{}) error {
	if len(headers) == 0 {
		return errors.New("表头为空")
	}
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("重命名 Sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#D9E1F2"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("创建表头样式: %w", err)
	}

	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return fmt.Errorf("写入表头 %s: %w", cell, err)
		}
		if err := f.SetCellStyle(sheet, cell, cell, headerStyle); err != nil {
			return fmt.Errorf("设置表头样式 %s: %w", cell, err)
		}
	}
	for r, row := range rows {
		for c, v := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("写入单元格 %s: %w", cell, err)
			}
		}
	}

	lastCol, err := excelize.ColumnNumberToName(len(headers))
	if err != nil {
		return err
	}
	return f.SetColWidth(sheet, "A", lastCol, 20)
}

func memberRow(m *model.Member) []interface{} {
	return []interface{}{
		m.ID,
		m.FullName,
		string(m.Category),
		deref(m.Email),
		deref(m.Phone),
		deref(m.Address),
		m.CreatedAt.Format("2006-01-02"),
	}
}

func rosterFilename(g *model.Group) string {
	name := slug.Make(g.Name)
	if name == "" {
		name = fmt.Sprintf("group-%d", g.ID)
	}
	return name + "-roster.xlsx"
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
