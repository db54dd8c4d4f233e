package services

import (
	"context"
	"strings"
	"time"

	"github.com/changil/changilweb-server/internal/calendar"
	"github.com/changil/changilweb-server/internal/models"
	"github.com/changil/changilweb-server/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	msgScheduleNotFound = "목회일정을 찾을 수 없습니다."
	msgScheduleRequired = "제목과 시작일은 필수입니다."
	msgBadMonth         = "유효하지 않은 연도 또는 월입니다."
)

type pastorScheduleService struct {
	repo repositories.PastorScheduleRepository
	loc  *time.Location
}

// NewPastorScheduleService creates a new PastorScheduleService. Month
// boundaries are computed in loc.
func NewPastorScheduleService(repo repositories.PastorScheduleRepository, loc *time.Location) PastorScheduleService {
	if loc == nil {
		loc = time.Local
	}
	return &pastorScheduleService{repo: repo, loc: loc}
}

func (s *pastorScheduleService) List(ctx context.Context, year int, month time.Month) ([]*models.PastorSchedule, error) {
	if year == 0 && month == 0 {
		return s.repo.FindActive(ctx)
	}
	if year < 1 || month < time.January || month > time.December {
		return nil, validationError(msgBadMonth)
	}
	start, end := calendar.MonthRange(year, month, s.loc)
	return s.repo.FindActiveOverlapping(ctx, start, end)
}

func (s *pastorScheduleService) Calendar(ctx context.Context, year int, month time.Month, today time.Time) (*calendar.Month, error) {
	schedules, err := s.List(ctx, year, month)
	if err != nil {
		return nil, err
	}
	return calendar.Build(year, month, today, schedules, s.loc), nil
}

func (s *pastorScheduleService) Get(ctx context.Context, id primitive.ObjectID) (*models.PastorSchedule, error) {
	schedule, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, msgScheduleNotFound)
	}
	return schedule, nil
}

func (s *pastorScheduleService) Create(ctx context.Context, req *models.PastorScheduleRequest) (*models.PastorSchedule, error) {
	title := deref(req.Title)
	if strings.TrimSpace(title) == "" || !req.StartDate.Valid {
		return nil, validationError(msgScheduleRequired)
	}
	color := deref(req.Color)
	if color == "" {
		color = models.DefaultScheduleColor
	}

	schedule := &models.PastorSchedule{
		Title:       title,
		StartDate:   req.StartDate.Time,
		EndDate:     req.EndDate.Ptr(),
		Description: deref(req.Description),
		Color:       color,
		Order:       derefInt(req.Order),
		IsActive:    true,
	}
	if schedule.EndDate != nil && schedule.EndDate.Before(schedule.StartDate) {
		return nil, validationError(msgEndBeforeStart)
	}
	if err := s.repo.Create(ctx, schedule); err != nil {
		return nil, err
	}
	return schedule, nil
}

func (s *pastorScheduleService) Update(ctx context.Context, id primitive.ObjectID, req *models.PastorScheduleRequest) (*models.PastorSchedule, error) {
	fields := repositories.Fields{}
	if v := deref(req.Title); v != "" {
		fields["title"] = v
	}
	if req.StartDate.Valid {
		fields["startDate"] = req.StartDate.Time
	}
	if req.EndDate.Set {
		fields["endDate"] = req.EndDate.Ptr()
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if v := deref(req.Color); v != "" {
		fields["color"] = v
	}
	if req.Order != nil {
		fields["order"] = *req.Order
	}
	if req.IsActive != nil {
		fields["isActive"] = *req.IsActive
	}
	if req.StartDate.Valid || req.EndDate.Valid {
		start, end := req.StartDate.Time, req.EndDate.Ptr()
		if !req.StartDate.Valid || !req.EndDate.Set {
			current, err := s.repo.FindByID(ctx, id)
			if err != nil {
				return nil, notFoundOr(err, msgScheduleNotFound)
			}
			if !req.StartDate.Valid {
				start = current.StartDate
			}
			if !req.EndDate.Set {
				end = current.EndDate
			}
		}
		if endsBefore(&start, end) {
			return nil, validationError(msgEndBeforeStart)
		}
	}

	schedule, err := s.repo.Update(ctx, id, fields)
	if err != nil {
		return nil, notFoundOr(err, msgScheduleNotFound)
	}
	return schedule, nil
}

func (s *pastorScheduleService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return notFoundOr(s.repo.Delete(ctx, id), msgScheduleNotFound)
}
