package repositories

import (
	"context"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/hirehunt/hirehunt/internal/app/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

// IUserRepository defines the user-related database operations
type IUserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// GetOrCreateByEmail returns the user with email, inserting a seeker named
	// name when none exists. created reports whether a row was inserted.
	GetOrCreateByEmail(ctx context.Context, email, name string) (user *models.User, created bool, err error)
	List(ctx context.Context) ([]*models.User, error)
	UpdateModeration(ctx context.Context, id int64, status *models.UserStatus, risk *models.RiskScore) (*models.User, error)
	UpdateProfile(ctx context.Context, id int64, update ProfileUpdate) (*models.User, error)
}

// IJobRepository defines the job-related database operations
type IJobRepository interface {
	Create(ctx context.Context, job *models.Job) error
	GetByID(ctx context.Context, id int64) (*models.Job, error)
	List(ctx context.Context) ([]*models.Job, error)
	ListByPoster(ctx context.Context, userID int64) ([]*models.Job, error)
	Search(ctx context.Context, criteria JobSearch) ([]*models.Job, error)
}

// IReferralRepository defines the referral-related database operations
type IReferralRepository interface {
	Create(ctx context.Context, referral *models.Referral) error
	Exists(ctx context.Context, jobID, seekerID int64) (bool, error)
	GetByID(ctx context.Context, id int64) (*models.Referral, error)
	List(ctx context.Context, filter models.ReferralFilter) ([]*models.Referral, error)
	// UpdateStatusIfPending moves a Pending referral to status. It fails with
	// ErrReferralNotFound or ErrReferralAlreadyDecided when nothing was updated.
	UpdateStatusIfPending(ctx context.Context, id int64, status models.ReferralStatus) (*models.Referral, error)
	CountByStatus(ctx context.Context, filter models.ReferralFilter) (map[models.ReferralStatus]int, error)
	AcceptedLeaderboard(ctx context.Context, limit int) ([]*models.EmployeeRank, error)
}

// IMessageRepository defines the message-related database operations
type IMessageRepository interface {
	Create(ctx context.Context, message *models.Message) error
	Conversation(ctx context.Context, userID, otherUserID int64) ([]*models.Message, error)
	ListForUser(ctx context.Context, userID int64) ([]*models.Message, error)
}

// IWalkInDriveRepository defines the walk-in drive database operations
type IWalkInDriveRepository interface {
	Create(ctx context.Context, drive *models.WalkInDrive) error
	List(ctx context.Context) ([]*models.WalkInDrive, error)
}

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository        *UserRepository
	JobRepository         *JobRepository
	ReferralRepository    *ReferralRepository
	MessageRepository     *MessageRepository
	WalkInDriveRepository *WalkInDriveRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:        NewUserRepository(db),
		JobRepository:         NewJobRepository(db),
		ReferralRepository:    NewReferralRepository(db),
		MessageRepository:     NewMessageRepository(db),
		WalkInDriveRepository: NewWalkInDriveRepository(db),
	}
}

func newStatementBuilder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// rowScanner is satisfied by both pgx.Row and pgx.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds an ILIKE pattern matching s anywhere in the column
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

func joinColumns(columns []string) string {
	return strings.Join(columns, ", ")
}

// prefixed qualifies every column with a table alias
func prefixed(alias string, columns []string) []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = alias + "." + c
	}
	return out
}

var (
	_ IUserRepository        = (*UserRepository)(nil)
	_ IJobRepository         = (*JobRepository)(nil)
	_ IReferralRepository    = (*ReferralRepository)(nil)
	_ IMessageRepository     = (*MessageRepository)(nil)
	_ IWalkInDriveRepository = (*WalkInDriveRepository)(nil)
)
