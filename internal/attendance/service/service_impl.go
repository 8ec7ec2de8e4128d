package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/eduverse/eduverse/internal/attendance/domain"
	notificationdomain "github.com/eduverse/eduverse/internal/notification/domain"
	"github.com/eduverse/eduverse/internal/observability/metrics"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB            *gorm.DB
	Log           *zap.Logger
	GenID         *snowflake.Node
	Repo          domain.Repository
	Notifications notificationdomain.Repository
	Metrics       *metrics.Metrics `optional:"true"`
}

type Service struct {
	db            *gorm.DB
	log           *zap.Logger
	genID         *snowflake.Node
	repo          domain.Repository
	notifications notificationdomain.Repository
	metrics       *metrics.Metrics
}

func New(p Params) domain.Service {
	return &Service{
		db:            p.DB,
		log:           p.Log.Named("attendance.service"),
		genID:         p.GenID,
		repo:          p.Repo,
		notifications: p.Notifications,
		metrics:       p.Metrics,
	}
}

func (s *Service) Mark(ctx context.Context, req domain.MarkAttendanceRequest) (domain.Attendance, error) {
	institutionID, err := snowflake.ParseString(strings.TrimSpace(req.InstitutionID))
	if err != nil || institutionID == 0 {
		return domain.Attendance{}, domain.ErrInvalidInstitution
	}

	studentID, err := snowflake.ParseString(strings.TrimSpace(req.StudentID))
	if err != nil || studentID == 0 {
		return domain.Attendance{}, domain.ErrInvalidStudent
	}

	var batchID *snowflake.ID
	if req.BatchID != nil && strings.TrimSpace(*req.BatchID) != "" {
		parsed, err := snowflake.ParseString(strings.TrimSpace(*req.BatchID))
		if err != nil {
			return domain.Attendance{}, domain.ErrInvalidBatch
		}
		batchID = &parsed
	}

	date := strings.TrimSpace(req.Date)
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return domain.Attendance{}, domain.ErrInvalidDate
	}

	status := domain.Status(strings.TrimSpace(req.Status))
	if status == "" {
		status = domain.StatusPresent
	}
	if !status.Valid() {
		return domain.Attendance{}, domain.ErrInvalidStatus
	}

	mode := domain.Mode(strings.TrimSpace(req.Mode))
	if mode == "" {
		mode = domain.ModeManual
	}
	if !mode.Valid() {
		return domain.Attendance{}, domain.ErrInvalidMode
	}

	attendance := domain.Attendance{
		ID:            s.genID.Generate(),
		InstitutionID: institutionID,
		StudentID:     studentID,
		BatchID:       batchID,
		Date:          date,
		Status:        status,
		Mode:          mode,
		GPSLat:        req.GPSLat,
		GPSLng:        req.GPSLng,
		Notes:         req.Notes,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.repo.Insert(ctx, s.db, &attendance); err != nil {
		return domain.Attendance{}, err
	}

	if status == domain.StatusAbsent {
		s.enqueueAbsenceAlert(ctx, attendance)
	}

	return attendance, nil
}

// enqueueAbsenceAlert records a queued push notification for the absent
// student. The attendance record is already durable; a failed enqueue is
// logged and does not fail the marking.
func (s *Service) enqueueAbsenceAlert(ctx context.Context, attendance domain.Attendance) {
	notification := notificationdomain.Notification{
		ID:            s.genID.Generate(),
		InstitutionID: attendance.InstitutionID,
		UserID:        attendance.StudentID,
		Channel:       notificationdomain.ChannelPush,
		Template:      notificationdomain.TemplateAbsenceAlert,
		Payload:       datatypes.JSONMap{"date": attendance.Date},
		Status:        notificationdomain.StatusQueued,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.notifications.Insert(ctx, s.db, &notification); err != nil {
		s.log.Error("failed to enqueue absence alert",
			zap.String("student_id", attendance.StudentID.String()),
			zap.String("date", attendance.Date),
			zap.Error(err),
		)
		return
	}

	s.metrics.RecordNotificationEnqueued(ctx, string(notification.Channel), notification.Template)
}

func (s *Service) List(ctx context.Context, req domain.ListAttendanceRequest) ([]domain.Attendance, error) {
	institutionID, err := snowflake.ParseString(strings.TrimSpace(req.InstitutionID))
	if err != nil || institutionID == 0 {
		return nil, domain.ErrInvalidInstitution
	}

	filter := domain.ListAttendanceFilter{
		InstitutionID: institutionID,
		Date:          strings.TrimSpace(req.Date),
	}
	if id := strings.TrimSpace(req.StudentID); id != "" {
		parsed, err := snowflake.ParseString(id)
		if err != nil {
			return nil, domain.ErrInvalidStudent
		}
		filter.StudentID = parsed
	}

	items, err := s.repo.List(ctx, s.db, filter)
	if err != nil {
		return nil, err
	}

	records := make([]domain.Attendance, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		records = append(records, *item)
	}
	return records, nil
}

func (s *Service) Trend(ctx context.Context, req domain.TrendRequest) ([]domain.TrendPoint, error) {
	institutionID, err := snowflake.ParseString(strings.TrimSpace(req.InstitutionID))
	if err != nil || institutionID == 0 {
		return nil, domain.ErrInvalidInstitution
	}

	studentID, err := snowflake.ParseString(strings.TrimSpace(req.StudentID))
	if err != nil || studentID == 0 {
		return nil, domain.ErrInvalidStudent
	}

	return s.repo.Trend(ctx, s.db, institutionID, studentID)
}
