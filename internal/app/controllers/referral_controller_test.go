package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	appauth "github.com/hirehunt/hirehunt/internal/app/auth"
	"github.com/hirehunt/hirehunt/internal/app/models"
	"github.com/hirehunt/hirehunt/internal/app/models/dto"
	"github.com/hirehunt/hirehunt/internal/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubReferralService struct {
	createErr error
	updateErr error
	listErr   error
	gotCaller *appauth.Identity
	gotCreate *dto.CreateReferralRequest
	gotID     int64
	gotStatus models.ReferralStatus
	gotFilter models.ReferralFilter
}

func (s *stubReferralService) CreateReferral(_ context.Context, caller *appauth.Identity, req *dto.CreateReferralRequest) (*models.Referral, error) {
	s.gotCaller = caller
	s.gotCreate = req
	if s.createErr != nil {
		return nil, s.createErr
	}
	return &models.Referral{ID: 1, JobID: req.JobID, Status: models.ReferralPending, Score: 42}, nil
}

func (s *stubReferralService) ListReferrals(_ context.Context, filter models.ReferralFilter) ([]*models.Referral, error) {
	s.gotFilter = filter
	if s.listErr != nil {
		return nil, s.listErr
	}
	return []*models.Referral{}, nil
}

func (s *stubReferralService) UpdateStatus(_ context.Context, id int64, status models.ReferralStatus) (*models.Referral, error) {
	s.gotID = id
	s.gotStatus = status
	if s.updateErr != nil {
		return nil, s.updateErr
	}
	return &models.Referral{ID: id, Status: status}, nil
}

func newReferralRouter(svc *stubReferralService, identity *appauth.Identity) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	if identity != nil {
		r.Use(func(c *gin.Context) {
			appauth.SetIdentity(c, *identity)
			c.Next()
		})
	}
	ctrl := NewReferralController(svc)
	r.GET("/api/referrals", ctrl.ListReferrals)
	r.POST("/api/referrals", ctrl.CreateReferral)
	r.PATCH("/api/referrals/:id", ctrl.UpdateStatus)
	return r
}

func serve(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorCode {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	return resp.Error.Code
}

func TestCreateReferral(t *testing.T) {
	t.Run("anonymous seeker", func(t *testing.T) {
		svc := &stubReferralService{}
		w := serve(newReferralRouter(svc, nil), http.MethodPost, "/api/referrals",
			`{"jobId":3,"note":"react","seekerEmail":"a@test.com"}`)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Nil(t, svc.gotCaller)
		assert.Equal(t, int64(3), svc.gotCreate.JobID)
		assert.Contains(t, w.Body.String(), `"score":42`)
	})

	t.Run("authenticated caller is passed through", func(t *testing.T) {
		svc := &stubReferralService{}
		id := &appauth.Identity{UserID: 9, Email: "s@test.com", Role: models.RoleSeeker}
		w := serve(newReferralRouter(svc, id), http.MethodPost, "/api/referrals", `{"jobId":3}`)

		require.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, svc.gotCaller)
		assert.Equal(t, int64(9), svc.gotCaller.UserID)
	})

	t.Run("missing jobId", func(t *testing.T) {
		svc := &stubReferralService{}
		w := serve(newReferralRouter(svc, nil), http.MethodPost, "/api/referrals", `{"note":"hi"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Nil(t, svc.gotCreate, "service not reached")
	})

	t.Run("service errors map to status", func(t *testing.T) {
		cases := map[error]int{
			apperrors.ErrJobNotFound:       http.StatusNotFound,
			apperrors.ErrDuplicateReferral: http.StatusConflict,
			apperrors.ErrValidationFailed:  http.StatusBadRequest,
		}
		for err, status := range cases {
			svc := &stubReferralService{createErr: err}
			w := serve(newReferralRouter(svc, nil), http.MethodPost, "/api/referrals", `{"jobId":3,"seekerEmail":"a@test.com"}`)
			assert.Equal(t, status, w.Code, err.Error())
		}
	})
}

func TestUpdateReferralStatus(t *testing.T) {
	t.Run("accepted", func(t *testing.T) {
		svc := &stubReferralService{}
		w := serve(newReferralRouter(svc, nil), http.MethodPatch, "/api/referrals/7", `{"status":"Accepted"}`)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, int64(7), svc.gotID)
		assert.Equal(t, models.ReferralAccepted, svc.gotStatus)
	})

	t.Run("invalid id", func(t *testing.T) {
		svc := &stubReferralService{}
		for _, path := range []string{"/api/referrals/abc", "/api/referrals/0", "/api/referrals/-4"} {
			w := serve(newReferralRouter(svc, nil), http.MethodPatch, path, `{"status":"Accepted"}`)
			assert.Equal(t, http.StatusBadRequest, w.Code, path)
		}
		assert.Zero(t, svc.gotID)
	})

	t.Run("not found", func(t *testing.T) {
		svc := &stubReferralService{updateErr: apperrors.ErrReferralNotFound}
		w := serve(newReferralRouter(svc, nil), http.MethodPatch, "/api/referrals/7", `{"status":"Rejected"}`)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, dto.ErrorCodeResourceNotFound, errorCode(t, w))
	})

	t.Run("already decided", func(t *testing.T) {
		svc := &stubReferralService{updateErr: apperrors.ErrReferralAlreadyDecided}
		w := serve(newReferralRouter(svc, nil), http.MethodPatch, "/api/referrals/7", `{"status":"Rejected"}`)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("invalid status", func(t *testing.T) {
		svc := &stubReferralService{updateErr: apperrors.ErrInvalidReferralStatus}
		w := serve(newReferralRouter(svc, nil), http.MethodPatch, "/api/referrals/7", `{"status":"Closed"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, dto.ErrorCodeValidationFailed, errorCode(t, w))
	})
}

func TestListReferrals_PassesFilter(t *testing.T) {
	svc := &stubReferralService{}
	w := serve(newReferralRouter(svc, nil), http.MethodGet, "/api/referrals?status=Pending&jobId=4", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.ReferralPending, svc.gotFilter.Status)
	assert.Equal(t, int64(4), svc.gotFilter.JobID)
	assert.Contains(t, w.Body.String(), `"data":[]`)
}
