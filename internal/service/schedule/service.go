package schedule

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	accessRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/access"
	bookingRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/booking"
	commentRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/comment"
	statusRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/status"
	"github.com/m04kA/SMC-ScheduleService/internal/service/schedule/models"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// Service корневой сервис расписания: авторизует вызовы через реестр прав и
// координирует компоненты (брони, статусы, заметки, профили). Собственного
// состояния не держит; каждое хранилище сериализует записи своим мьютексом.
type Service struct {
	bookingRepo  BookingRepository
	statusRepo   StatusRepository
	commentRepo  CommentRepository
	accessRepo   AccessRepository
	profileRepo  ProfileRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписания.
// При timeProvider == nil используется системное время.
func NewService(
	bookingRepo BookingRepository,
	statusRepo StatusRepository,
	commentRepo CommentRepository,
	accessRepo AccessRepository,
	profileRepo ProfileRepository,
	timeProvider TimeProvider,
	logger Logger,
) *Service {
	if timeProvider == nil {
		timeProvider = NewRealTimeProvider(nil)
	}
	return &Service{
		bookingRepo:  bookingRepo,
		statusRepo:   statusRepo,
		commentRepo:  commentRepo,
		accessRepo:   accessRepo,
		profileRepo:  profileRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// today возвращает текущую дату по часам сервиса
func (s *Service) today() domain.DateKey {
	return domain.DateKeyFromTime(s.timeProvider.Now())
}

// checkActive отклоняет заблокированных пользователей.
// Вызывается первым в каждой операции.
func (s *Service) checkActive(userID int64) error {
	if s.accessRepo.IsRestricted(userID) {
		s.logger.Warn("auth: restricted user=%d rejected", userID)
		return ErrUnauthorized
	}
	return nil
}

// checkAdmin отклоняет вызовы административных операций без прав
func (s *Service) checkAdmin(userID int64) error {
	if !s.accessRepo.IsAdmin(userID) {
		s.logger.Warn("auth: user=%d is not an admin", userID)
		return ErrUnauthorized
	}
	return nil
}

// EnsureUser регистрирует пользователя при первом контакте с именем из
// платформы. Уже заданное имя не перезаписывается. Операция доступна и
// заблокированным пользователям: фронтенду нужно имя для уведомления об
// отказе в доступе.
func (s *Service) EnsureUser(userID int64, platformName string) models.UserResponse {
	p := s.profileRepo.Ensure(userID, strings.TrimSpace(platformName))
	return models.UserResponse{
		UserID:       p.UserID,
		DisplayName:  p.DisplayName,
		IsAdmin:      s.accessRepo.IsAdmin(userID),
		IsRestricted: s.accessRepo.IsRestricted(userID),
	}
}

// Cancel отменяет бронь по ключу (date, start).
// Отменить бронь может только её владелец.
func (s *Service) Cancel(date domain.DateKey, start types.TimeString, callerID int64) error {
	if err := s.checkActive(callerID); err != nil {
		return err
	}

	s.logger.Info("Cancel: date=%s start=%s caller=%d", date, start, callerID)

	if err := s.bookingRepo.Cancel(date, start, callerID); err != nil {
		switch {
		case errors.Is(err, bookingRepo.ErrBookingNotFound):
			s.logger.Warn("Cancel: booking %s %s not found", date, start)
			return ErrBookingNotFound
		case errors.Is(err, bookingRepo.ErrNotOwner):
			s.logger.Warn("Cancel: user=%d is not the owner of %s %s", callerID, date, start)
			return ErrNotOwner
		default:
			s.logger.Error("Cancel: repository error: %v", err)
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("Cancel: booking %s %s cancelled by user=%d", date, start, callerID)
	return nil
}

// ListMine возвращает брони пользователя в хронологическом порядке
func (s *Service) ListMine(ownerID int64) (*models.BookingListResponse, error) {
	if err := s.checkActive(ownerID); err != nil {
		return nil, err
	}

	bookings := s.bookingRepo.GetByOwner(ownerID)
	resp := &models.BookingListResponse{Bookings: make([]models.BookingResponse, 0, len(bookings))}
	for _, b := range bookings {
		resp.Bookings = append(resp.Bookings, models.FromDomainBooking(b, s.displayName(b.OwnerID)))
	}

	s.logger.Info("ListMine: %d bookings for user=%d", len(resp.Bookings), ownerID)
	return resp, nil
}

// ListAll возвращает все брони, сгруппированные по возрастанию даты и
// времени начала, с отображаемыми именами владельцев
func (s *Service) ListAll(callerID int64) (*models.AllBookingsResponse, error) {
	if err := s.checkActive(callerID); err != nil {
		return nil, err
	}

	bookings := s.bookingRepo.GetAll()
	resp := &models.AllBookingsResponse{}
	for _, b := range bookings {
		item := models.FromDomainBooking(b, s.displayName(b.OwnerID))
		n := len(resp.Days)
		if n == 0 || resp.Days[n-1].Date != item.Date {
			resp.Days = append(resp.Days, models.DayBookingsResponse{Date: item.Date})
			n++
		}
		resp.Days[n-1].Bookings = append(resp.Days[n-1].Bookings, item)
	}

	s.logger.Info("ListAll: %d bookings over %d days for user=%d", len(bookings), len(resp.Days), callerID)
	return resp, nil
}

// GetWindow возвращает окно статусов на 10 дней вперёд вместе с заметками.
// Отсутствующие дни материализуются значениями по умолчанию. Чужое окно
// доступно только администраторам.
func (s *Service) GetWindow(callerID, targetID int64) (*models.StatusWindowResponse, error) {
	if err := s.checkActive(callerID); err != nil {
		return nil, err
	}
	if callerID != targetID {
		if err := s.checkAdmin(callerID); err != nil {
			return nil, err
		}
	}

	entries := s.statusRepo.GetWindow(targetID, s.today())

	comments := make(map[domain.DateKey]string)
	for _, c := range s.commentRepo.GetByUser(targetID) {
		comments[c.Date] = c.Text
	}

	resp := &models.StatusWindowResponse{
		UserID:      targetID,
		DisplayName: s.displayName(targetID),
		Entries:     make([]models.StatusEntryResponse, 0, len(entries)),
	}
	for _, e := range entries {
		resp.Entries = append(resp.Entries, models.FromDomainStatusEntry(e, comments[e.Date]))
	}

	s.logger.Info("GetWindow: user=%d window for target=%d", callerID, targetID)
	return resp, nil
}

// ToggleStatus переключает статус пользователя на дату к следующему значению
// цикла и возвращает новый статус
func (s *Service) ToggleStatus(userID int64, date domain.DateKey) (*models.ToggleStatusResponse, error) {
	if err := s.checkActive(userID); err != nil {
		return nil, err
	}

	next, err := s.statusRepo.Toggle(userID, date, s.today())
	if err != nil {
		if errors.Is(err, statusRepo.ErrOutOfWindow) {
			s.logger.Warn("ToggleStatus: date=%s outside window for user=%d", date, userID)
			return nil, ErrOutOfWindow
		}
		s.logger.Error("ToggleStatus: repository error: %v", err)
		return nil, fmt.Errorf("%w: ToggleStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ToggleStatus: user=%d date=%s -> %s", userID, date, next)
	return &models.ToggleStatusResponse{Date: date.String(), Status: string(next)}, nil
}

// AddComment устанавливает или перезаписывает заметку пользователя на дату
func (s *Service) AddComment(userID int64, date domain.DateKey, text string) error {
	if err := s.checkActive(userID); err != nil {
		return err
	}

	if err := s.commentRepo.Set(userID, date, text); err != nil {
		if errors.Is(err, commentRepo.ErrEmptyComment) {
			s.logger.Warn("AddComment: empty text from user=%d for date=%s", userID, date)
			return ErrEmptyComment
		}
		s.logger.Error("AddComment: repository error: %v", err)
		return fmt.Errorf("%w: AddComment - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("AddComment: user=%d date=%s", userID, date)
	return nil
}

// DeleteComment удаляет заметку пользователя на дату
func (s *Service) DeleteComment(userID int64, date domain.DateKey) error {
	if err := s.checkActive(userID); err != nil {
		return err
	}

	if err := s.commentRepo.Delete(userID, date); err != nil {
		if errors.Is(err, commentRepo.ErrCommentNotFound) {
			s.logger.Warn("DeleteComment: no comment for user=%d date=%s", userID, date)
			return ErrCommentNotFound
		}
		s.logger.Error("DeleteComment: repository error: %v", err)
		return fmt.Errorf("%w: DeleteComment - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteComment: user=%d date=%s", userID, date)
	return nil
}

// GetComment возвращает заметку пользователя на дату
func (s *Service) GetComment(userID int64, date domain.DateKey) (*models.CommentResponse, error) {
	if err := s.checkActive(userID); err != nil {
		return nil, err
	}

	text, err := s.commentRepo.Get(userID, date)
	if err != nil {
		if errors.Is(err, commentRepo.ErrCommentNotFound) {
			return nil, ErrCommentNotFound
		}
		s.logger.Error("GetComment: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetComment - repository error: %v", ErrInternal, err)
	}

	return &models.CommentResponse{UserID: userID, Date: date.String(), Text: text}, nil
}

// SetDisplayName устанавливает отображаемое имя пользователя.
// Пустое после обрезки или длиннее 50 символов имя отклоняется.
func (s *Service) SetDisplayName(userID int64, name string) error {
	if err := s.checkActive(userID); err != nil {
		return err
	}

	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		s.logger.Warn("SetDisplayName: empty name from user=%d", userID)
		return ErrEmptyName
	}
	if utf8.RuneCountInString(trimmed) > domain.MaxDisplayNameLength {
		s.logger.Warn("SetDisplayName: name too long from user=%d (%d runes)",
			userID, utf8.RuneCountInString(trimmed))
		return ErrNameTooLong
	}

	s.profileRepo.SetDisplayName(userID, trimmed)
	s.logger.Info("SetDisplayName: user=%d -> %q", userID, trimmed)
	return nil
}

// Restrict блокирует пользователя. Операция доступна только администраторам
// и идемпотентна. Побочный эффект: все заметки заблокированного пользователя
// удаляются (координация между компонентами выполняется здесь, а не внутри
// реестра прав).
func (s *Service) Restrict(actingAdminID, targetID int64) error {
	if err := s.checkActive(actingAdminID); err != nil {
		return err
	}
	if err := s.checkAdmin(actingAdminID); err != nil {
		return err
	}

	s.accessRepo.Restrict(targetID)
	purged := s.commentRepo.PurgeUser(targetID)

	s.logger.Info("Restrict: admin=%d restricted user=%d, %d comments purged",
		actingAdminID, targetID, purged)
	return nil
}

// Unrestrict снимает блокировку. Разблокировка возвращает только доступ:
// удалённые при блокировке заметки не восстанавливаются.
func (s *Service) Unrestrict(actingAdminID, targetID int64) error {
	if err := s.checkActive(actingAdminID); err != nil {
		return err
	}
	if err := s.checkAdmin(actingAdminID); err != nil {
		return err
	}

	if err := s.accessRepo.Unrestrict(targetID); err != nil {
		if errors.Is(err, accessRepo.ErrNotRestricted) {
			s.logger.Warn("Unrestrict: user=%d was not restricted", targetID)
			return ErrNotRestricted
		}
		s.logger.Error("Unrestrict: repository error: %v", err)
		return fmt.Errorf("%w: Unrestrict - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Unrestrict: admin=%d unrestricted user=%d", actingAdminID, targetID)
	return nil
}

// Promote назначает пользователя администратором
func (s *Service) Promote(actingAdminID, targetID int64) error {
	if err := s.checkActive(actingAdminID); err != nil {
		return err
	}
	if err := s.checkAdmin(actingAdminID); err != nil {
		return err
	}

	if err := s.accessRepo.Promote(targetID); err != nil {
		if errors.Is(err, accessRepo.ErrAlreadyAdmin) {
			s.logger.Warn("Promote: user=%d is already an admin", targetID)
			return ErrAlreadyAdmin
		}
		s.logger.Error("Promote: repository error: %v", err)
		return fmt.Errorf("%w: Promote - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Promote: admin=%d promoted user=%d", actingAdminID, targetID)
	return nil
}

// Demote снимает права администратора с пользователя. Самоснятие запрещено.
func (s *Service) Demote(actingAdminID, targetID int64) error {
	if err := s.checkActive(actingAdminID); err != nil {
		return err
	}
	if err := s.checkAdmin(actingAdminID); err != nil {
		return err
	}

	if err := s.accessRepo.Demote(targetID, actingAdminID); err != nil {
		switch {
		case errors.Is(err, accessRepo.ErrSelfDemote):
			s.logger.Warn("Demote: admin=%d tried to demote themselves", actingAdminID)
			return ErrSelfDemote
		case errors.Is(err, accessRepo.ErrNotAdmin):
			s.logger.Warn("Demote: user=%d is not an admin", targetID)
			return ErrNotAdminTarget
		default:
			s.logger.Error("Demote: repository error: %v", err)
			return fmt.Errorf("%w: Demote - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("Demote: admin=%d demoted user=%d", actingAdminID, targetID)
	return nil
}

// ListUsers возвращает всех известных пользователей со служебными флагами.
// Сводный список доступен только администраторам.
func (s *Service) ListUsers(callerID int64) (*models.UserListResponse, error) {
	if err := s.checkActive(callerID); err != nil {
		return nil, err
	}
	if err := s.checkAdmin(callerID); err != nil {
		return nil, err
	}

	profiles := s.profileRepo.GetAll()
	resp := &models.UserListResponse{Users: make([]models.UserResponse, 0, len(profiles))}
	for _, p := range profiles {
		resp.Users = append(resp.Users, models.UserResponse{
			UserID:       p.UserID,
			DisplayName:  p.DisplayName,
			IsAdmin:      s.accessRepo.IsAdmin(p.UserID),
			IsRestricted: s.accessRepo.IsRestricted(p.UserID),
		})
	}

	s.logger.Info("ListUsers: %d users for admin=%d", len(resp.Users), callerID)
	return resp, nil
}

// displayName возвращает отображаемое имя пользователя либо пустую строку
func (s *Service) displayName(userID int64) string {
	p, err := s.profileRepo.Get(userID)
	if err != nil {
		return ""
	}
	return p.DisplayName
}
