package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/hirehunt/hirehunt/internal/app/models"
	"github.com/hirehunt/hirehunt/internal/app/repositories"
	"github.com/hirehunt/hirehunt/internal/pkg/apperrors"
	"github.com/hirehunt/hirehunt/internal/pkg/notify"
)

var testNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

type fakeUserRepo struct {
	mu     sync.Mutex
	users  map[int64]*models.User
	nextID int64
}

func newFakeUserRepo(users ...*models.User) *fakeUserRepo {
	r := &fakeUserRepo{users: map[int64]*models.User{}}
	for _, u := range users {
		r.users[u.ID] = u
		if u.ID > r.nextID {
			r.nextID = u.ID
		}
	}
	return r
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return apperrors.ErrUserAlreadyExists
		}
	}
	r.nextID++
	user.ID = r.nextID
	user.CreatedAt = testNow
	user.UpdatedAt = testNow
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, apperrors.ErrUserNotFound
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (r *fakeUserRepo) GetOrCreateByEmail(ctx context.Context, email, name string) (*models.User, bool, error) {
	if u, err := r.GetByEmail(ctx, email); err == nil {
		return u, false, nil
	}
	u := &models.User{Email: email, Name: name, Role: models.RoleSeeker, Status: models.UserStatusPending, RiskScore: models.RiskLow}
	if err := r.Create(ctx, u); err != nil {
		return nil, false, err
	}
	return u, true, nil
}

func (r *fakeUserRepo) List(_ context.Context) ([]*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*models.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *fakeUserRepo) UpdateModeration(ctx context.Context, id int64, status *models.UserStatus, risk *models.RiskScore) (*models.User, error) {
	u, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if status != nil {
		u.Status = *status
	}
	if risk != nil {
		u.RiskScore = *risk
	}
	return u, nil
}

func (r *fakeUserRepo) UpdateProfile(ctx context.Context, id int64, update repositories.ProfileUpdate) (*models.User, error) {
	u, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if update.Name != nil {
		u.Name = *update.Name
	}
	if update.Skills != nil {
		u.Skills = update.Skills
	}
	if update.College != nil {
		u.College = update.College
	}
	if update.Hometown != nil {
		u.Hometown = update.Hometown
	}
	return u, nil
}

type fakeJobRepo struct {
	jobs     map[int64]*models.Job
	nextID   int64
	lastSeen repositories.JobSearch
}

func newFakeJobRepo(jobs ...*models.Job) *fakeJobRepo {
	r := &fakeJobRepo{jobs: map[int64]*models.Job{}}
	for _, j := range jobs {
		r.jobs[j.ID] = j
		if j.ID > r.nextID {
			r.nextID = j.ID
		}
	}
	return r
}

func (r *fakeJobRepo) Create(_ context.Context, job *models.Job) error {
	r.nextID++
	job.ID = r.nextID
	r.jobs[job.ID] = job
	return nil
}

func (r *fakeJobRepo) GetByID(_ context.Context, id int64) (*models.Job, error) {
	if j, ok := r.jobs[id]; ok {
		return j, nil
	}
	return nil, apperrors.ErrJobNotFound
}

func (r *fakeJobRepo) List(_ context.Context) ([]*models.Job, error) {
	out := make([]*models.Job, 0, len(r.jobs))
	for _, j := range r.jobs {
		out = append(out, j)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *fakeJobRepo) ListByPoster(ctx context.Context, userID int64) ([]*models.Job, error) {
	all, _ := r.List(ctx)
	out := []*models.Job{}
	for _, j := range all {
		if j.PostedByID != nil && *j.PostedByID == userID {
			out = append(out, j)
		}
	}
	return out, nil
}

func (r *fakeJobRepo) Search(ctx context.Context, criteria repositories.JobSearch) ([]*models.Job, error) {
	r.lastSeen = criteria
	return r.List(ctx)
}

type fakeReferralRepo struct {
	referrals map[int64]*models.Referral
	nextID    int64
	users     *fakeUserRepo
	jobs      *fakeJobRepo

	getErr error
	ranks  []*models.EmployeeRank
}

func newFakeReferralRepo(users *fakeUserRepo, jobs *fakeJobRepo) *fakeReferralRepo {
	return &fakeReferralRepo{referrals: map[int64]*models.Referral{}, users: users, jobs: jobs}
}

func (r *fakeReferralRepo) Create(_ context.Context, referral *models.Referral) error {
	if _, ok := r.jobs.jobs[referral.JobID]; !ok {
		return apperrors.ErrJobNotFound
	}
	r.nextID++
	referral.ID = r.nextID
	referral.CreatedAt = testNow
	referral.UpdatedAt = testNow
	stored := *referral
	r.referrals[referral.ID] = &stored
	return nil
}

func (r *fakeReferralRepo) Exists(_ context.Context, jobID, seekerID int64) (bool, error) {
	for _, ref := range r.referrals {
		if ref.JobID == jobID && ref.SeekerID == seekerID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeReferralRepo) GetByID(ctx context.Context, id int64) (*models.Referral, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	ref, ok := r.referrals[id]
	if !ok {
		return nil, apperrors.ErrReferralNotFound
	}
	out := *ref
	out.Job, _ = r.jobs.GetByID(ctx, ref.JobID)
	if seeker, err := r.users.GetByID(ctx, ref.SeekerID); err == nil {
		out.Seeker = seeker.Summary()
	}
	return &out, nil
}

func (r *fakeReferralRepo) List(ctx context.Context, filter models.ReferralFilter) ([]*models.Referral, error) {
	out := []*models.Referral{}
	for id := range r.referrals {
		ref, _ := r.GetByID(ctx, id)
		if filter.Status != "" && ref.Status != filter.Status {
			continue
		}
		if filter.SeekerID > 0 && ref.SeekerID != filter.SeekerID {
			continue
		}
		if filter.JobID > 0 && ref.JobID != filter.JobID {
			continue
		}
		out = append(out, ref)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *fakeReferralRepo) UpdateStatusIfPending(_ context.Context, id int64, status models.ReferralStatus) (*models.Referral, error) {
	ref, ok := r.referrals[id]
	if !ok {
		return nil, apperrors.ErrReferralNotFound
	}
	if ref.Status != models.ReferralPending {
		return nil, apperrors.ErrReferralAlreadyDecided
	}
	ref.Status = status
	out := *ref
	return &out, nil
}

func (r *fakeReferralRepo) CountByStatus(_ context.Context, _ models.ReferralFilter) (map[models.ReferralStatus]int, error) {
	counts := map[models.ReferralStatus]int{}
	for _, ref := range r.referrals {
		counts[ref.Status]++
	}
	return counts, nil
}

func (r *fakeReferralRepo) AcceptedLeaderboard(_ context.Context, limit int) ([]*models.EmployeeRank, error) {
	if len(r.ranks) > limit {
		return r.ranks[:limit], nil
	}
	return r.ranks, nil
}

type fakeMessageRepo struct {
	messages []*models.Message
	users    *fakeUserRepo
}

func (r *fakeMessageRepo) Create(ctx context.Context, message *models.Message) error {
	if _, err := r.users.GetByID(ctx, message.ReceiverID); err != nil {
		return err
	}
	message.ID = int64(len(r.messages) + 1)
	message.CreatedAt = testNow.Add(time.Duration(message.ID) * time.Minute)
	r.messages = append(r.messages, message)
	return nil
}

func (r *fakeMessageRepo) Conversation(_ context.Context, userID, otherUserID int64) ([]*models.Message, error) {
	out := []*models.Message{}
	for _, m := range r.messages {
		if (m.SenderID == userID && m.ReceiverID == otherUserID) || (m.SenderID == otherUserID && m.ReceiverID == userID) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeMessageRepo) ListForUser(_ context.Context, userID int64) ([]*models.Message, error) {
	out := []*models.Message{}
	for i := len(r.messages) - 1; i >= 0; i-- {
		m := r.messages[i]
		if m.SenderID == userID || m.ReceiverID == userID {
			out = append(out, m)
		}
	}
	return out, nil
}

type fakeDriveRepo struct {
	drives []*models.WalkInDrive
}

func (r *fakeDriveRepo) Create(_ context.Context, drive *models.WalkInDrive) error {
	drive.ID = int64(len(r.drives) + 1)
	drive.CreatedAt = testNow
	r.drives = append(r.drives, drive)
	return nil
}

func (r *fakeDriveRepo) List(_ context.Context) ([]*models.WalkInDrive, error) {
	return r.drives, nil
}

type recordingSender struct {
	mu   sync.Mutex
	sent []notify.Notification
	full bool
}

func (s *recordingSender) Dispatch(n notify.Notification) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.full {
		return false
	}
	s.sent = append(s.sent, n)
	return true
}

type publishedEvent struct {
	UserID  int64
	Type    string
	Payload interface{}
}

type recordingPublisher struct {
	events []publishedEvent
}

func (p *recordingPublisher) Publish(userID int64, eventType string, payload interface{}) {
	p.events = append(p.events, publishedEvent{UserID: userID, Type: eventType, Payload: payload})
}

func strPtr(s string) *string { return &s }

func int64Ptr(v int64) *int64 { return &v }
