package controllers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/simka-id/simka-backend/api/middleware"
	"github.com/simka-id/simka-backend/internal/members"
	"github.com/simka-id/simka-backend/pkg/auth"
	"github.com/simka-id/simka-backend/pkg/enums"
	pkgerrors "github.com/simka-id/simka-backend/pkg/errors"
	"github.com/simka-id/simka-backend/pkg/logger"
	"github.com/simka-id/simka-backend/pkg/pagination"
)

type testMembersService struct {
	listFn   func(ctx context.Context, principal auth.Principal, filter members.ListFilter, params pagination.Params) (*members.ListResult, error)
	getFn    func(ctx context.Context, principal auth.Principal, id uuid.UUID) (*members.MemberDTO, error)
	createFn func(ctx context.Context, principal auth.Principal, input members.CreateMemberInput) (*members.MemberDTO, error)
	updateFn func(ctx context.Context, principal auth.Principal, id uuid.UUID, input members.UpdateMemberInput) (*members.MemberDTO, error)
	deleteFn func(ctx context.Context, principal auth.Principal, id uuid.UUID) error
}

func (s *testMembersService) List(ctx context.Context, principal auth.Principal, filter members.ListFilter, params pagination.Params) (*members.ListResult, error) {
	if s.listFn != nil {
		return s.listFn(ctx, principal, filter, params)
	}
	return &members.ListResult{}, nil
}

func (s *testMembersService) Get(ctx context.Context, principal auth.Principal, id uuid.UUID) (*members.MemberDTO, error) {
	if s.getFn != nil {
		return s.getFn(ctx, principal, id)
	}
	return &members.MemberDTO{}, nil
}

func (s *testMembersService) Create(ctx context.Context, principal auth.Principal, input members.CreateMemberInput) (*members.MemberDTO, error) {
	if s.createFn != nil {
		return s.createFn(ctx, principal, input)
	}
	return &members.MemberDTO{}, nil
}

func (s *testMembersService) Update(ctx context.Context, principal auth.Principal, id uuid.UUID, input members.UpdateMemberInput) (*members.MemberDTO, error) {
	if s.updateFn != nil {
		return s.updateFn(ctx, principal, id, input)
	}
	return &members.MemberDTO{}, nil
}

func (s *testMembersService) Delete(ctx context.Context, principal auth.Principal, id uuid.UUID) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, principal, id)
	}
	return nil
}

func testControllerLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
}

func withTestPrincipal(req *http.Request) *http.Request {
	principal := auth.Principal{UserID: uuid.New(), Username: "pusat", Role: enums.UserRoleCentralAdmin}
	return req.WithContext(middleware.WithPrincipal(req.Context(), principal))
}

func withMemberIDParam(req *http.Request, id uuid.UUID) *http.Request {
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add("id", id.String())
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))
}

func TestListMembersParsesQuery(t *testing.T) {
	var captured struct {
		filter members.ListFilter
		params pagination.Params
	}
	svc := &testMembersService{
		listFn: func(_ context.Context, _ auth.Principal, filter members.ListFilter, params pagination.Params) (*members.ListResult, error) {
			captured.filter = filter
			captured.params = params
			return &members.ListResult{Items: []members.MemberDTO{}}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/members?page=2&limit=25&search=siti&status=AKTIF&gender=P&cabang=riau", nil)
	req = withTestPrincipal(req)
	resp := httptest.NewRecorder()
	ListMembers(svc, testControllerLogger())(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("unexpected status %d: %s", resp.Code, resp.Body.String())
	}
	if captured.params.Page != 2 || captured.params.Limit != 25 {
		t.Fatalf("unexpected pagination %+v", captured.params)
	}
	if captured.filter.Search != "siti" || captured.filter.Branch != "riau" {
		t.Fatalf("unexpected filter %+v", captured.filter)
	}
	if captured.filter.Status != enums.MembershipStatusAktif || captured.filter.Gender != enums.GenderFemale {
		t.Fatalf("unexpected enum filters %+v", captured.filter)
	}
}

func TestListMembersRejectsBadPagination(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/members?limit=9999", nil)
	req = withTestPrincipal(req)
	resp := httptest.NewRecorder()
	ListMembers(&testMembersService{}, testControllerLogger())(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestCreateMemberValidatesBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/members", strings.NewReader(`{"nama_lengkap":""}`))
	req = withTestPrincipal(req)
	resp := httptest.NewRecorder()
	CreateMember(&testMembersService{}, testControllerLogger())(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	var payload struct {
		Error struct {
			Code    string            `json:"code"`
			Details map[string]string `json:"details"`
		} `json:"error"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if payload.Error.Code != string(pkgerrors.CodeValidation) {
		t.Fatalf("unexpected code %s", payload.Error.Code)
	}
	if _, ok := payload.Error.Details["nama_lengkap"]; !ok {
		t.Fatalf("expected nama_lengkap detail, got %v", payload.Error.Details)
	}
}

func TestCreateMemberReturns201(t *testing.T) {
	svc := &testMembersService{
		createFn: func(_ context.Context, _ auth.Principal, input members.CreateMemberInput) (*members.MemberDTO, error) {
			return &members.MemberDTO{NPA: "202601150042", NamaLengkap: input.NamaLengkap}, nil
		},
	}

	body := `{
		"nama_lengkap": "Siti Rahma",
		"jenis_kelamin": "P",
		"tempat_lahir": "Pekanbaru",
		"tanggal_lahir": "1990-04-12T00:00:00Z",
		"alamat_rumah": "Jl. Sudirman No. 1",
		"kota": "Pekanbaru",
		"provinsi": "Riau",
		"nomor_hp": "081234567890",
		"email": "siti@example.com",
		"alumni": "Universitas Riau",
		"bulan_tahun_lulus": "07/2014",
		"status_anggota": "BIASA",
		"cabang": "riau",
		"tempat_praktik": [{"nama_rs": "RS Awal Bros", "kota": "Pekanbaru", "provinsi": "Riau"}]
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/members", strings.NewReader(body))
	req = withTestPrincipal(req)
	resp := httptest.NewRecorder()
	CreateMember(svc, testControllerLogger())(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
	}
	var envelope struct {
		Data members.MemberDTO `json:"data"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if envelope.Data.NPA != "202601150042" {
		t.Fatalf("unexpected npa %s", envelope.Data.NPA)
	}
}

func TestGetMemberRejectsMalformedID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/members/not-a-uuid", nil)
	req = withTestPrincipal(req)
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add("id", "not-a-uuid")
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))

	resp := httptest.NewRecorder()
	GetMember(&testMembersService{}, testControllerLogger())(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestDeleteMemberPropagatesServiceError(t *testing.T) {
	id := uuid.New()
	svc := &testMembersService{
		deleteFn: func(context.Context, auth.Principal, uuid.UUID) error {
			return pkgerrors.New(pkgerrors.CodeForbidden, "member belongs to another branch")
		},
	}

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/members/"+id.String(), nil)
	req = withTestPrincipal(req)
	req = withMemberIDParam(req, id)
	resp := httptest.NewRecorder()
	DeleteMember(svc, testControllerLogger())(resp, req)

	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", resp.Code)
	}
}

func TestMembersHandlersRequirePrincipal(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/members", nil)
	resp := httptest.NewRecorder()
	ListMembers(&testMembersService{}, testControllerLogger())(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.Code)
	}
}
