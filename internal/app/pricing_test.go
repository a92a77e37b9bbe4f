package app

import (
	"net/http"
	"testing"

	"github.com/metinatakli/ticket-service/api"
	"github.com/metinatakli/ticket-service/internal/domain"
	"github.com/stretchr/testify/mock"
)

func TestBasePrice(t *testing.T) {
	env := newTestEnv(t)

	resp, body := env.do(t, http.MethodGet, "/pricing/base-price", nil)
	checkErrorResponse(t, resp, body, http.StatusOK, "")
	if price := decode[api.BasePriceResponse](t, body); price.Price != domain.DefaultBasePrice {
		t.Errorf("base price = %d, want %d", price.Price, domain.DefaultBasePrice)
	}

	env.signInUser(t)

	resp, body = env.do(t, http.MethodPut, "/pricing/base-price", api.UpdateBasePriceRequest{Price: 2000})
	checkErrorResponse(t, resp, body, http.StatusForbidden, domain.ErrNotAuthorized.Error())

	env.signInAdmin(t)

	resp, body = env.do(t, http.MethodPut, "/pricing/base-price", api.UpdateBasePriceRequest{Price: 2000})
	checkErrorResponse(t, resp, body, http.StatusOK, "")

	resp, body = env.do(t, http.MethodGet, "/pricing/base-price", nil)
	checkErrorResponse(t, resp, body, http.StatusOK, "")
	if price := decode[api.BasePriceResponse](t, body); price.Price != 2000 {
		t.Errorf("base price = %d, want 2000", price.Price)
	}
}

func TestAttachPricingComponent(t *testing.T) {
	imax := &domain.PricingComponent{ID: 5, Name: "imax", Amount: 500}

	tests := []struct {
		name           string
		input          api.AttachPricingComponentRequest
		setup          func(env *testEnv)
		wantStatus     int
		wantErrMessage string
	}{
		{
			name:  "movie",
			input: api.AttachPricingComponentRequest{Target: api.TargetMovie, MovieTitle: "Dune"},
			setup: func(env *testEnv) {
				env.movies.On("GetByTitle", mock.Anything, "Dune").Return(testMovie(), nil)
				env.movies.On("AttachPricingComponent", mock.Anything, 1, 5).Return(nil)
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name:  "room",
			input: api.AttachPricingComponentRequest{Target: api.TargetRoom, RoomName: "R1"},
			setup: func(env *testEnv) {
				env.rooms.On("GetByName", mock.Anything, "R1").Return(testRoom(), nil)
				env.rooms.On("AttachPricingComponent", mock.Anything, 2, 5).Return(nil)
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name: "screening",
			input: api.AttachPricingComponentRequest{
				Target:     api.TargetScreening,
				MovieTitle: "Dune",
				RoomName:   "R1",
				StartTime:  "2023-12-05 13:30",
			},
			setup: func(env *testEnv) {
				env.screenings.On("GetByKey", mock.Anything, testKey()).Return(testScreening(), nil)
				env.screenings.On("AttachPricingComponent", mock.Anything, 3, 5).Return(nil)
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name:           "room target without a room",
			input:          api.AttachPricingComponentRequest{Target: api.TargetRoom},
			wantStatus:     http.StatusBadRequest,
			wantErrMessage: `roomName is required for target "room"`,
		},
		{
			name:           "screening target without a start time",
			input:          api.AttachPricingComponentRequest{Target: api.TargetScreening, MovieTitle: "Dune", RoomName: "R1"},
			wantStatus:     http.StatusBadRequest,
			wantErrMessage: `movieTitle, roomName and startTime are required for target "screening"`,
		},
		{
			name:           "unknown target",
			input:          api.AttachPricingComponentRequest{Target: "seat"},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: "must be one of: movie room screening",
		},
		{
			name:  "unknown movie",
			input: api.AttachPricingComponentRequest{Target: api.TargetMovie, MovieTitle: "Nope"},
			setup: func(env *testEnv) {
				env.movies.On("GetByTitle", mock.Anything, "Nope").Return(nil, domain.ErrRecordNotFound)
			},
			wantStatus:     http.StatusNotFound,
			wantErrMessage: "movie does not exist",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			env.components.On("GetByName", mock.Anything, "imax").Return(imax, nil)
			if tt.setup != nil {
				tt.setup(env)
			}
			env.signInAdmin(t)

			resp, body := env.do(t, http.MethodPost, "/pricing-components/imax/attachments", tt.input)
			checkErrorResponse(t, resp, body, tt.wantStatus, tt.wantErrMessage)
		})
	}
}

func TestCreatePricingComponent(t *testing.T) {
	env := newTestEnv(t)
	env.components.On("Create", mock.Anything, mock.AnythingOfType("*domain.PricingComponent")).Return(nil).Once()
	env.components.On("Create", mock.Anything, mock.AnythingOfType("*domain.PricingComponent")).Return(domain.ErrAlreadyExists)
	env.signInAdmin(t)

	input := api.CreatePricingComponentRequest{Name: "imax", Amount: -100}

	resp, body := env.do(t, http.MethodPost, "/pricing-components", input)
	checkErrorResponse(t, resp, body, http.StatusCreated, "")
	if c := decode[api.PricingComponentResponse](t, body); c.Amount != -100 {
		t.Errorf("amount = %d, want -100", c.Amount)
	}

	resp, body = env.do(t, http.MethodPost, "/pricing-components", input)
	checkErrorResponse(t, resp, body, http.StatusConflict, domain.ErrAlreadyExists.Error())
}
