package http

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/kebba/gomove/internal/pkg/errs"
	"github.com/kebba/gomove/internal/pkg/models"
	"github.com/kebba/gomove/services/fulfillers/mocks"
)

func newFulfillerContext(e *echo.Echo, method, body string, actor *models.Actor) (echo.Context, *httptest.ResponseRecorder) {
	var request *http.Request
	if body != "" {
		request = httptest.NewRequest(method, "/", bytes.NewBufferString(body))
		request.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		request = httptest.NewRequest(method, "/", nil)
	}
	recorder := httptest.NewRecorder()
	c := e.NewContext(request, recorder)
	if actor != nil {
		c.Set("user_id", actor.ID)
		c.Set("user_role", actor.Role)
	}
	return c, recorder
}

func TestNewFulfillerHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFulfillerUC := mocks.NewMockFulfillerUC(ctrl)
	handler := NewFulfillerHandler(mockFulfillerUC)

	assert.NotNil(t, handler)
	assert.Equal(t, mockFulfillerUC, handler.fulfillerUC)
}

func TestFulfillerHandler_Register_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFulfillerUC := mocks.NewMockFulfillerUC(ctrl)
	handler := NewFulfillerHandler(mockFulfillerUC)

	actor := models.Actor{ID: uuid.New(), Role: models.RoleDriver}
	mockFulfillerUC.EXPECT().
		Register(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, f *models.Fulfiller) error {
			assert.Equal(t, actor.ID, f.UserID)
			assert.Equal(t, models.FulfillerTypeDriver, f.Type)
			assert.Equal(t, "BJL 4321", f.VehiclePlate)
			return nil
		}).
		Times(1)

	e := echo.New()
	body := `{"type":"driver","full_name":"Lamin Ceesay","vehicle_type":"car","vehicle_plate":"BJL 4321"}`
	c, recorder := newFulfillerContext(e, http.MethodPost, body, &actor)

	err := handler.Register(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, recorder.Code)
}

func TestFulfillerHandler_Register_MissingActor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFulfillerUC := mocks.NewMockFulfillerUC(ctrl)
	handler := NewFulfillerHandler(mockFulfillerUC)

	e := echo.New()
	c, recorder := newFulfillerContext(e, http.MethodPost, `{"type":"driver"}`, nil)

	err := handler.Register(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestFulfillerHandler_Register_DuplicateUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFulfillerUC := mocks.NewMockFulfillerUC(ctrl)
	handler := NewFulfillerHandler(mockFulfillerUC)

	actor := models.Actor{ID: uuid.New(), Role: models.RoleDriver}
	mockFulfillerUC.EXPECT().
		Register(gomock.Any(), gomock.Any()).
		Return(errs.Validation("user already registered as a fulfiller")).
		Times(1)

	e := echo.New()
	c, recorder := newFulfillerContext(e, http.MethodPost, `{"type":"driver","full_name":"Lamin"}`, &actor)

	err := handler.Register(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestFulfillerHandler_GetFulfiller_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFulfillerUC := mocks.NewMockFulfillerUC(ctrl)
	handler := NewFulfillerHandler(mockFulfillerUC)

	id := uuid.New()
	mockFulfillerUC.EXPECT().
		GetByID(gomock.Any(), id).
		Return(&models.Fulfiller{ID: id, ApprovalStatus: models.ApprovalStatusApproved}, nil).
		Times(1)

	e := echo.New()
	c, recorder := newFulfillerContext(e, http.MethodGet, "", nil)
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	err := handler.GetFulfiller(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestFulfillerHandler_GetFulfiller_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFulfillerUC := mocks.NewMockFulfillerUC(ctrl)
	handler := NewFulfillerHandler(mockFulfillerUC)

	id := uuid.New()
	mockFulfillerUC.EXPECT().
		GetByID(gomock.Any(), id).
		Return(nil, errs.NotFound("fulfiller not found")).
		Times(1)

	e := echo.New()
	c, recorder := newFulfillerContext(e, http.MethodGet, "", nil)
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	err := handler.GetFulfiller(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestFulfillerHandler_SetApproval_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFulfillerUC := mocks.NewMockFulfillerUC(ctrl)
	handler := NewFulfillerHandler(mockFulfillerUC)

	id := uuid.New()
	mockFulfillerUC.EXPECT().
		SetApproval(gomock.Any(), id, models.ApprovalStatusApproved).
		Return(&models.Fulfiller{ID: id, ApprovalStatus: models.ApprovalStatusApproved}, nil).
		Times(1)

	e := echo.New()
	c, recorder := newFulfillerContext(e, http.MethodPost, `{"action":"approve"}`, nil)
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	err := handler.SetApproval(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestFulfillerHandler_SetApproval_UnknownAction(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFulfillerUC := mocks.NewMockFulfillerUC(ctrl)
	handler := NewFulfillerHandler(mockFulfillerUC)

	e := echo.New()
	c, recorder := newFulfillerContext(e, http.MethodPost, `{"action":"promote"}`, nil)
	c.SetParamNames("id")
	c.SetParamValues(uuid.New().String())

	err := handler.SetApproval(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestFulfillerHandler_SetApproval_RejectedIsFinal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFulfillerUC := mocks.NewMockFulfillerUC(ctrl)
	handler := NewFulfillerHandler(mockFulfillerUC)

	id := uuid.New()
	mockFulfillerUC.EXPECT().
		SetApproval(gomock.Any(), id, models.ApprovalStatusApproved).
		Return(nil, errs.InvalidTransition("cannot approve a rejected fulfiller")).
		Times(1)

	e := echo.New()
	c, recorder := newFulfillerContext(e, http.MethodPost, `{"action":"approve"}`, nil)
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	err := handler.SetApproval(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusConflict, recorder.Code)
}

func TestFulfillerHandler_SetAvailability_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFulfillerUC := mocks.NewMockFulfillerUC(ctrl)
	handler := NewFulfillerHandler(mockFulfillerUC)

	actor := models.Actor{ID: uuid.New(), Role: models.RoleDriver}
	mockFulfillerUC.EXPECT().
		SetAvailability(gomock.Any(), actor.ID, models.AvailabilityAvailable).
		Return(&models.Fulfiller{Availability: models.AvailabilityAvailable}, nil).
		Times(1)

	e := echo.New()
	c, recorder := newFulfillerContext(e, http.MethodPut, `{"availability":"available"}`, &actor)

	err := handler.SetAvailability(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestFulfillerHandler_SetAvailability_BlockedWhileReserved(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFulfillerUC := mocks.NewMockFulfillerUC(ctrl)
	handler := NewFulfillerHandler(mockFulfillerUC)

	actor := models.Actor{ID: uuid.New(), Role: models.RoleDriver}
	mockFulfillerUC.EXPECT().
		SetAvailability(gomock.Any(), actor.ID, models.AvailabilityOffline).
		Return(nil, errs.BlockedByActiveBooking("finish the active booking first")).
		Times(1)

	e := echo.New()
	c, recorder := newFulfillerContext(e, http.MethodPut, `{"availability":"offline"}`, &actor)

	err := handler.SetAvailability(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusConflict, recorder.Code)
}

func TestFulfillerHandler_ListAvailable_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFulfillerUC := mocks.NewMockFulfillerUC(ctrl)
	handler := NewFulfillerHandler(mockFulfillerUC)

	mockFulfillerUC.EXPECT().
		ListAvailable(gomock.Any(), models.FulfillerTypeLogistics).
		Return([]*models.Fulfiller{}, nil).
		Times(1)

	e := echo.New()
	request := httptest.NewRequest(http.MethodGet, "/?type=logistics", nil)
	recorder := httptest.NewRecorder()
	c := e.NewContext(request, recorder)

	err := handler.ListAvailable(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestFulfillerHandler_ListAvailable_DefaultsToDriver(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFulfillerUC := mocks.NewMockFulfillerUC(ctrl)
	handler := NewFulfillerHandler(mockFulfillerUC)

	mockFulfillerUC.EXPECT().
		ListAvailable(gomock.Any(), models.FulfillerTypeDriver).
		Return(nil, errors.New("database down")).
		Times(1)

	e := echo.New()
	request := httptest.NewRequest(http.MethodGet, "/", nil)
	recorder := httptest.NewRecorder()
	c := e.NewContext(request, recorder)

	err := handler.ListAvailable(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
}
