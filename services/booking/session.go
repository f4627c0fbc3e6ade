package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"akshara/models"
	"akshara/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// sourceBookingModal tags webhook payloads that originate from the site's
// booking widget so downstream automation can route them.
const sourceBookingModal = "website_booking_modal"

// InitiateSession creates a fresh booking session for one widget opening:
// an empty form (default purpose, optional staff preselect) and a calendar
// viewing the current month with nothing selected.
func (s *DefaultBookingSessionService) InitiateSession(preselectedStaffID string) (*models.BookingSession, error) {
	now := time.Now()
	session := models.BookingSession{
		SessionID: uuid.New().String(),
		Phase:     models.PhaseForm,
		Form: models.BookingForm{
			Purpose: models.BookingPurposes[0],
			StaffID: preselectedStaffID,
		},
		Calendar: models.CalendarSelection{
			ViewedYear:  now.Year(),
			ViewedMonth: int(now.Month()),
		},
		CreatedAt: now,
	}

	if err := s.saveSession(&session); err != nil {
		return nil, err
	}
	return &session, nil
}

// GetSession returns the current state of a session.
func (s *DefaultBookingSessionService) GetSession(sessionID string) (*models.BookingSession, error) {
	return s.loadSession(sessionID)
}

// UpdateForm applies a partial edit to the contact/meeting fields.
func (s *DefaultBookingSessionService) UpdateForm(sessionID string, update FormUpdate) (*models.BookingSession, error) {
	session, err := s.loadMutableSession(sessionID)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		session.Form.Name = *update.Name
	}
	if update.Email != nil {
		session.Form.Email = *update.Email
	}
	if update.Phone != nil {
		session.Form.Phone = *update.Phone
	}
	if update.Purpose != nil {
		session.Form.Purpose = *update.Purpose
	}
	if update.StaffID != nil {
		session.Form.StaffID = *update.StaffID
	}
	if update.Message != nil {
		session.Form.Message = *update.Message
	}
	if update.IsUrgent != nil {
		session.Form.IsUrgent = *update.IsUrgent
	}

	if err := s.saveSession(session); err != nil {
		return nil, err
	}
	return session, nil
}

// NavigateMonth shifts the viewed month by exactly one calendar month in
// either direction. Navigation is unbounded; any past or future month may
// be viewed. The current selection is untouched.
func (s *DefaultBookingSessionService) NavigateMonth(sessionID, direction string) (*models.BookingSession, error) {
	session, err := s.loadMutableSession(sessionID)
	if err != nil {
		return nil, err
	}

	var step int
	switch direction {
	case "previous":
		step = -1
	case "next":
		step = 1
	default:
		return nil, ErrUnknownDirection
	}

	grid := BuildMonthGrid(session.Calendar.ViewedYear, session.Calendar.ViewedMonth+step)
	session.Calendar.ViewedYear = grid.Year
	session.Calendar.ViewedMonth = grid.Month

	if err := s.saveSession(session); err != nil {
		return nil, err
	}
	return session, nil
}

// SelectDate picks a day on the calendar. Changing the date always clears
// any previously selected time slot, so a stale time from another day can
// never be submitted. Past dates are deliberately allowed.
func (s *DefaultBookingSessionService) SelectDate(sessionID string, year, month, day int) (*models.BookingSession, error) {
	session, err := s.loadMutableSession(sessionID)
	if err != nil {
		return nil, err
	}

	if month < 1 || month > 12 || day < 1 || day > daysInMonth(year, month) {
		return nil, ErrInvalidDate
	}

	session.Calendar.ViewedYear = year
	session.Calendar.ViewedMonth = month
	session.Calendar.SelectedDate = FormatDate(year, month, day)
	session.Calendar.SelectedTime = ""

	if err := s.saveSession(session); err != nil {
		return nil, err
	}
	return session, nil
}

// SelectTime picks a half-hour slot. A date must already be selected and the
// slot must be one of the fixed offered slots.
func (s *DefaultBookingSessionService) SelectTime(sessionID, slot string) (*models.BookingSession, error) {
	session, err := s.loadMutableSession(sessionID)
	if err != nil {
		return nil, err
	}

	if session.Calendar.SelectedDate == "" {
		return nil, ErrNoDateSelected
	}
	if !isValidSlot(slot) {
		return nil, ErrUnknownSlot
	}

	session.Calendar.SelectedTime = slot

	if err := s.saveSession(session); err != nil {
		return nil, err
	}
	return session, nil
}

// Confirm submits the booking. With no date or time selected it aborts before
// any outbound call. Otherwise the form plus the resolved date/time is posted
// to the automation webhook; per the documented contract the dispatch result
// is success regardless of transport outcome, and the session moves to the
// success phase.
func (s *DefaultBookingSessionService) Confirm(sessionID string) (*models.BookingSession, error) {
	session, err := s.loadSession(sessionID)
	if err != nil {
		return nil, err
	}
	if session.Phase == models.PhaseSuccess {
		return nil, ErrSessionCompleted
	}
	if session.Calendar.SelectedDate == "" || session.Calendar.SelectedTime == "" {
		return nil, ErrDateTimeNotSelected
	}

	session.Form.Date = session.Calendar.SelectedDate
	session.Form.Time = session.Calendar.SelectedTime

	submission := models.BookingSubmission{
		Name:      session.Form.Name,
		Email:     session.Form.Email,
		Phone:     session.Form.Phone,
		Purpose:   session.Form.Purpose,
		StaffID:   session.Form.StaffID,
		Date:      session.Form.Date,
		Time:      session.Form.Time,
		Message:   session.Form.Message,
		IsUrgent:  session.Form.IsUrgent,
		Timestamp: time.Now().UTC(),
		Source:    sourceBookingModal,
	}

	if ok := s.Dispatcher.Dispatch(context.Background(), submission); !ok {
		return session, nil
	}

	session.Phase = models.PhaseSuccess
	session.Confirmation = &models.BookingConfirmation{
		ScheduledFor: session.Form.Date + " at " + session.Form.Time,
		Email:        session.Form.Email,
	}

	if s.Reminders != nil {
		if err := s.Reminders.ScheduleBookingReminder(submission); err != nil {
			utils.GetLogger().Warn("failed to schedule booking reminder", zap.Error(err))
		}
	}

	// The widget may have been closed while the dispatch was in flight; in
	// that case the session key is gone and the resolution is discarded
	// rather than resurrecting state.
	if err := s.saveSessionIfOpen(session); err != nil {
		return nil, err
	}
	return session, nil
}

// CancelSession closes the widget and discards all in-memory state for this
// opening. Reopening starts a fresh session.
func (s *DefaultBookingSessionService) CancelSession(sessionID string) error {
	ctx := context.Background()
	if err := s.Cache.Del(ctx, utils.SessionCachePrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("failed to cancel booking session: %w", err)
	}
	return nil
}

func (s *DefaultBookingSessionService) loadSession(sessionID string) (*models.BookingSession, error) {
	ctx := context.Background()
	data, err := s.Cache.Get(ctx, utils.SessionCachePrefix+sessionID).Result()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read booking session: %w", err)
	}
	var session models.BookingSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse booking session: %w", err)
	}
	return &session, nil
}

// loadMutableSession loads a session and rejects edits once it reached the
// success phase; the only transition out of success is closing the widget.
func (s *DefaultBookingSessionService) loadMutableSession(sessionID string) (*models.BookingSession, error) {
	session, err := s.loadSession(sessionID)
	if err != nil {
		return nil, err
	}
	if session.Phase == models.PhaseSuccess {
		return nil, ErrSessionCompleted
	}
	return session, nil
}

func (s *DefaultBookingSessionService) saveSession(session *models.BookingSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal booking session: %w", err)
	}
	ctx := context.Background()
	if err := s.Cache.Set(ctx, utils.SessionCachePrefix+session.SessionID, data, utils.SessionCacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to store booking session: %w", err)
	}
	return nil
}

func (s *DefaultBookingSessionService) saveSessionIfOpen(session *models.BookingSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal booking session: %w", err)
	}
	ctx := context.Background()
	if err := s.Cache.SetXX(ctx, utils.SessionCachePrefix+session.SessionID, data, utils.SessionCacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to store booking session: %w", err)
	}
	return nil
}
