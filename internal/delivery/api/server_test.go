package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"pizzeria/config"
	apimiddleware "pizzeria/internal/delivery/api/middleware"
	"pizzeria/internal/delivery/api/router"
	"pizzeria/internal/delivery/api/router/handler"
	deliverycontext "pizzeria/internal/delivery/context"
	"pizzeria/internal/domain/entity"
	domainerrors "pizzeria/internal/domain/errors"
	"pizzeria/internal/domain/service"
	"pizzeria/internal/infra/metrics"
	mockUsecase "pizzeria/internal/mocks/usecase"
	"pizzeria/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testAPI struct {
	echo      *echo.Echo
	store     *mockUsecase.MockStoreStatusUsecase
	menu      *mockUsecase.MockMenuUsecase
	cart      *mockUsecase.MockCartUsecase
	checkout  *mockUsecase.MockCheckoutUsecase
	orders    *mockUsecase.MockOrderUsecase
	tracker   *mockUsecase.MockOrderTrackerUsecase
	reviews   *mockUsecase.MockReviewUsecase
	devices   *mockUsecase.MockDeviceUsecase
	staffAuth *mockUsecase.MockStaffAuthUsecase
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	cfg := &config.Config{
		Realtime: &config.RealtimeConfig{HeartbeatInterval: time.Hour},
		Metrics:  &config.MetricsConfig{Enabled: true, Path: "/metrics"},
	}
	cfg.HTTP.MaxRequestBodySize = "100KB"
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	api := &testAPI{
		store:     mockUsecase.NewMockStoreStatusUsecase(t),
		menu:      mockUsecase.NewMockMenuUsecase(t),
		cart:      mockUsecase.NewMockCartUsecase(t),
		checkout:  mockUsecase.NewMockCheckoutUsecase(t),
		orders:    mockUsecase.NewMockOrderUsecase(t),
		tracker:   mockUsecase.NewMockOrderTrackerUsecase(t),
		reviews:   mockUsecase.NewMockReviewUsecase(t),
		devices:   mockUsecase.NewMockDeviceUsecase(t),
		staffAuth: mockUsecase.NewMockStaffAuthUsecase(t),
	}

	api.echo = newEcho(ServerParams{
		Cfg:    cfg,
		Logger: logger,
		RouterParams: router.RouterParams{
			StoreHandler: handler.NewStoreHandler(handler.StoreHandlerParams{StoreUC: api.store, Config: cfg, Logger: logger}),
			MenuHandler:  handler.NewMenuHandler(handler.MenuHandlerParams{MenuUC: api.menu}),
			CartHandler:  handler.NewCartHandler(handler.CartHandlerParams{CartUC: api.cart}),
			OrderHandler: handler.NewOrderHandler(handler.OrderHandlerParams{
				CheckoutUC: api.checkout,
				OrderUC:    api.orders,
				TrackerUC:  api.tracker,
				ReviewUC:   api.reviews,
				Config:     cfg,
				Logger:     logger,
			}),
			StaffOrderHandler: handler.NewStaffOrderHandler(handler.StaffOrderHandlerParams{OrderUC: api.orders, Config: cfg}),
			DeviceHandler:     handler.NewDeviceHandler(handler.DeviceHandlerParams{DeviceUC: api.devices}),
			StaffAuthHandler:  handler.NewStaffAuthHandler(handler.StaffAuthHandlerParams{StaffAuthUC: api.staffAuth}),
			AuthMiddleware:    apimiddleware.NewAuthMiddleware(apimiddleware.AuthMiddlewareParams{StaffAuth: api.staffAuth}),
			Metrics:           metrics.NewRecorder(prometheus.NewRegistry()),
			Config:            cfg,
		},
	})

	return api
}

func (a *testAPI) do(method, target, body string, headers ...string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	a.echo.ServeHTTP(rec, req)

	return rec
}

// loginAs makes every Bearer "good-token" resolve to a staff member holding roles.
func (a *testAPI) loginAs(staffID uuid.UUID, roles ...string) {
	a.staffAuth.EXPECT().ValidateAccess(mock.Anything, "good-token").
		Return(&service.Claims{StaffID: staffID, Roles: roles, Type: service.TokenTypeAccess}, nil)
}

type errorEnvelope struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorEnvelope {
	t.Helper()

	var env errorEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return env
}

func TestServer_Health(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestServer_RequestIDIsEchoed(t *testing.T) {
	api := newTestAPI(t)
	api.store.EXPECT().FormattedHours().Return("18:00 - 23:00")

	rec := api.do(http.MethodGet, "/api/v1/store/hours", "", deliverycontext.HeaderXRequestID, "req-42")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "req-42", rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.Contains(t, rec.Body.String(), `"request_id":"req-42"`)
	assert.Contains(t, rec.Body.String(), "18:00 - 23:00")
}

func TestServer_Metrics(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodGet, "/metrics", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "pizzeria_gate_denials_total")
}

func TestServer_InteractionGate(t *testing.T) {
	t.Run("closed store answers 423 with the support contact", func(t *testing.T) {
		api := newTestAPI(t)
		api.store.EXPECT().CheckInteraction(mock.Anything).
			Return(domainerrors.ErrStoreClosed.WithDetails("Store is closed. To order, contact us at (11) 5555-0100"))

		rec := api.do(http.MethodGet, "/api/v1/store/interaction", "")

		assert.Equal(t, http.StatusLocked, rec.Code)
		env := decodeError(t, rec)
		assert.Equal(t, "STORE_CLOSED", env.Error.Code)
		assert.Equal(t, "Store is closed. To order, contact us at (11) 5555-0100", env.Error.Details)
	})

	t.Run("open store is allowed", func(t *testing.T) {
		api := newTestAPI(t)
		api.store.EXPECT().CheckInteraction(mock.Anything).Return(nil)
		api.store.EXPECT().FormattedHours().Return("18:00 - 23:00")

		rec := api.do(http.MethodGet, "/api/v1/store/interaction", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"allowed":true`)
	})

	t.Run("closed store blocks cart mutation", func(t *testing.T) {
		api := newTestAPI(t)
		menuItemID := uuid.New()
		api.cart.EXPECT().AddItem(mock.Anything, "cart-1", menuItemID, 2, "").
			Return(nil, domainerrors.ErrStoreClosed)

		rec := api.do(http.MethodPost, "/api/v1/carts/cart-1/items",
			`{"menu_item_id":"`+menuItemID.String()+`","quantity":2}`)

		assert.Equal(t, http.StatusLocked, rec.Code)
	})
}

func TestServer_StaffRoutesRequireAuthentication(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		api := newTestAPI(t)

		rec := api.do(http.MethodPost, "/api/v1/staff/store/toggle", "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "MISSING_TOKEN", decodeError(t, rec).Error.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		api := newTestAPI(t)
		api.staffAuth.EXPECT().ValidateAccess(mock.Anything, "bad-token").
			Return(nil, domainerrors.ErrInvalidCredentials)

		rec := api.do(http.MethodPost, "/api/v1/staff/store/toggle", "", echo.HeaderAuthorization, "Bearer bad-token")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("no dashboard role", func(t *testing.T) {
		api := newTestAPI(t)
		api.loginAs(uuid.New(), "courier")

		rec := api.do(http.MethodPost, "/api/v1/staff/store/toggle", "", echo.HeaderAuthorization, "Bearer good-token")

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("either role may toggle", func(t *testing.T) {
		for _, role := range []entity.Role{entity.RoleStaff, entity.RoleManager} {
			api := newTestAPI(t)
			staffID := uuid.New()
			api.loginAs(staffID, role.String())
			api.store.EXPECT().Toggle(mock.Anything, "staff:"+staffID.String()).
				Return(&entity.StoreStatus{IsOpen: true}, nil)

			rec := api.do(http.MethodPost, "/api/v1/staff/store/toggle", "", echo.HeaderAuthorization, "Bearer good-token")

			assert.Equal(t, http.StatusOK, rec.Code, role)
			assert.Contains(t, rec.Body.String(), `"is_open":true`)
		}
	})
}

func TestServer_StaffOrders(t *testing.T) {
	t.Run("invalid transition is a conflict", func(t *testing.T) {
		api := newTestAPI(t)
		staffID := uuid.New()
		orderID := uuid.New()
		api.loginAs(staffID, entity.RoleStaff.String())
		api.orders.EXPECT().UpdateStatus(mock.Anything, orderID, entity.OrderStatusDelivering, "staff:"+staffID.String()).
			Return(nil, domainerrors.ErrInvalidStatusTransition.WithDetails(`cannot move order from "pending" to "delivering"`))

		rec := api.do(http.MethodPut, "/api/v1/staff/orders/"+orderID.String()+"/status", `{"status":"delivering"}`,
			echo.HeaderAuthorization, "Bearer good-token")

		assert.Equal(t, http.StatusConflict, rec.Code)
		env := decodeError(t, rec)
		assert.Equal(t, "INVALID_STATUS_TRANSITION", env.Error.Code)
		assert.Contains(t, env.Error.Details, "pending")
	})

	t.Run("list parses status filter and limit", func(t *testing.T) {
		api := newTestAPI(t)
		api.loginAs(uuid.New(), entity.RoleManager.String())
		api.orders.EXPECT().ListOrders(mock.Anything, &usecase.ListOrdersInput{
			Statuses: []entity.OrderStatus{entity.OrderStatusPending, entity.OrderStatusPreparing},
			Limit:    10,
		}).Return([]*entity.Order{}, nil)

		rec := api.do(http.MethodGet, "/api/v1/staff/orders?status=pending,preparing&limit=10", "",
			echo.HeaderAuthorization, "Bearer good-token")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unknown status filter is rejected", func(t *testing.T) {
		api := newTestAPI(t)
		api.loginAs(uuid.New(), entity.RoleStaff.String())

		rec := api.do(http.MethodGet, "/api/v1/staff/orders?status=pending,baking", "",
			echo.HeaderAuthorization, "Bearer good-token")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", decodeError(t, rec).Error.Code)
	})
}

func TestServer_PlaceOrderValidation(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodPost, "/api/v1/orders", `{"cart_id":"cart-1"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeError(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Contains(t, env.Error.Details, "customer_name")
}

func TestServer_Review(t *testing.T) {
	t.Run("rating is checked by the use case", func(t *testing.T) {
		api := newTestAPI(t)
		orderID := uuid.New()
		customerID := uuid.New()
		api.reviews.EXPECT().SubmitReview(mock.Anything, orderID, customerID, 9, "great").
			Return(nil, domainerrors.ErrInvalidRating)

		rec := api.do(http.MethodPost, "/api/v1/orders/"+orderID.String()+"/review",
			`{"customer_id":"`+customerID.String()+`","rating":9,"comment":"great"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_RATING", decodeError(t, rec).Error.Code)
	})

	t.Run("malformed order id", func(t *testing.T) {
		api := newTestAPI(t)

		rec := api.do(http.MethodPost, "/api/v1/orders/not-a-uuid/review", `{"customer_id":"`+uuid.NewString()+`","rating":5}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("created", func(t *testing.T) {
		api := newTestAPI(t)
		orderID := uuid.New()
		customerID := uuid.New()
		api.reviews.EXPECT().SubmitReview(mock.Anything, orderID, customerID, 5, "").
			Return(&entity.Review{ID: uuid.New(), OrderID: orderID, Rating: 5}, nil)

		rec := api.do(http.MethodPost, "/api/v1/orders/"+orderID.String()+"/review",
			`{"customer_id":"`+customerID.String()+`","rating":5}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})
}

func TestServer_TrackStreamsServerSentEvents(t *testing.T) {
	api := newTestAPI(t)
	order := &entity.Order{ID: uuid.New(), Status: entity.OrderStatusCompleted}

	updates := make(chan *entity.TrackingUpdate, 2)
	updates <- &entity.TrackingUpdate{Order: order, ReviewPrompt: true}
	close(updates)
	api.tracker.EXPECT().Track(mock.Anything, order.ID).Return(updates, nil)

	rec := api.do(http.MethodGet, "/api/v1/orders/"+order.ID.String()+"/track", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/event-stream", rec.Header().Get(echo.HeaderContentType))
	body := rec.Body.String()
	assert.Contains(t, body, "event: order\ndata: ")
	assert.Contains(t, body, `"review_prompt":true`)
	assert.Contains(t, body, `"status":"completed"`)
}

func TestServer_TrackUnknownOrder(t *testing.T) {
	api := newTestAPI(t)
	orderID := uuid.New()
	api.tracker.EXPECT().Track(mock.Anything, orderID).Return(nil, domainerrors.ErrOrderNotFound)

	rec := api.do(http.MethodGet, "/api/v1/orders/"+orderID.String()+"/track", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "ORDER_NOT_FOUND", decodeError(t, rec).Error.Code)
}

func TestServer_TrackingQR(t *testing.T) {
	api := newTestAPI(t)
	orderID := uuid.New()
	api.orders.EXPECT().GenerateTrackingQR(mock.Anything, orderID).Return([]byte("\x89PNG"), nil)

	rec := api.do(http.MethodGet, "/api/v1/orders/"+orderID.String()+"/qr", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "\x89PNG", rec.Body.String())
}

func TestServer_ConfirmDelivery(t *testing.T) {
	api := newTestAPI(t)
	orderID := uuid.New()
	customerID := uuid.New()
	api.orders.EXPECT().ConfirmDelivery(mock.Anything, orderID, customerID).
		Return(nil, domainerrors.ErrForbidden.WithDetails("order belongs to another customer"))

	rec := api.do(http.MethodPost, "/api/v1/orders/"+orderID.String()+"/confirm-delivery",
		`{"customer_id":"`+customerID.String()+`"}`)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestServer_Devices(t *testing.T) {
	api := newTestAPI(t)
	customerID := uuid.New()
	api.devices.EXPECT().RegisterDevice(mock.Anything, customerID, &usecase.DeviceInfo{
		FCMToken: "fcm-1",
		DeviceID: "phone-1",
		Platform: "android",
	}).Return(&entity.CustomerDevice{ID: uuid.New(), CustomerID: customerID}, nil)

	rec := api.do(http.MethodPost, "/api/v1/customers/"+customerID.String()+"/devices",
		`{"fcm_token":"fcm-1","device_id":"phone-1","platform":"android"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = api.do(http.MethodPost, "/api/v1/customers/"+customerID.String()+"/devices",
		`{"fcm_token":"fcm-1","device_id":"phone-1","platform":"symbian"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_StaffLogin(t *testing.T) {
	api := newTestAPI(t)
	api.staffAuth.EXPECT().Login(mock.Anything, "ana", "wrong").Return(nil, domainerrors.ErrInvalidCredentials)

	rec := api.do(http.MethodPost, "/auth/staff/login", `{"username":"ana","password":"wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", decodeError(t, rec).Error.Code)
}

func TestServer_UnhandledErrorHidesInternals(t *testing.T) {
	api := newTestAPI(t)
	api.menu.EXPECT().ListMenu(mock.Anything, "pizza").Return(nil, io.ErrUnexpectedEOF)

	rec := api.do(http.MethodGet, "/api/v1/menu?category=pizza", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	env := decodeError(t, rec)
	assert.Equal(t, "INTERNAL_ERROR", env.Error.Code)
	assert.NotContains(t, rec.Body.String(), "unexpected EOF")
}
