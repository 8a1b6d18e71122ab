package export

import (
	"bytes"
	"context"
	"fmt"

	"barbercrm/internal/submission"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// Service renders a branch's records as an .xlsx workbook.
type Service struct {
	records   RecordSource
	dashboard DashboardSource
	log       *zap.Logger
}

func NewService(records RecordSource, dashboard DashboardSource, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{records: records, dashboard: dashboard, log: log}
}

// Workbook has a dashboard sheet for the current month followed by one sheet
// per form kind, named after its resource.
func (s *Service) Workbook(ctx context.Context, branchID int64) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			s.log.Debug("close workbook", zap.Error(err))
		}
	}()

	st, err := newStyles(f)
	if err != nil {
		return nil, err
	}

	summary, err := s.dashboard.Summary(ctx, branchID, s.dashboard.CurrentMonth())
	if err != nil {
		return nil, err
	}
	if err := writeDashboard(f, st, summary); err != nil {
		return nil, fmt.Errorf("write dashboard sheet: %w", err)
	}

	for _, kind := range submission.Kinds() {
		list, err := s.records.All(ctx, branchID, kind)
		if err != nil {
			return nil, err
		}
		if err := writeRecords(f, st, kind.Resource(), list); err != nil {
			return nil, fmt.Errorf("write %s sheet: %w", kind.Resource(), err)
		}
	}

	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}
	if idx, err := f.GetSheetIndex(dashboardSheet); err == nil {
		f.SetActiveSheet(idx)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return &buf, nil
}
