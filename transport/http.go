package transport

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	distributionapp "github.com/muhammadheryan/garment-erp/application/distribution"
	dispatchapp "github.com/muhammadheryan/garment-erp/application/dispatch"
	orderapp "github.com/muhammadheryan/garment-erp/application/order"
	pickingapp "github.com/muhammadheryan/garment-erp/application/picking"
	qcapp "github.com/muhammadheryan/garment-erp/application/qc"
	"github.com/muhammadheryan/garment-erp/cmd/config"
	"github.com/muhammadheryan/garment-erp/constant"
	utilsContext "github.com/muhammadheryan/garment-erp/utils/context"
	"github.com/muhammadheryan/garment-erp/utils/errors"
	validatorx "github.com/muhammadheryan/garment-erp/utils/validator"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	DistributionApp distributionapp.DistributionApp
	PickingApp      pickingapp.PickingApp
	QCApp           qcapp.QCApp
	DispatchApp     dispatchapp.DispatchApp
	OrderApp        orderapp.OrderApp
}

func NewTransport(cfg *config.Config, rh *RestHandler) http.Handler {
	mux := mux.NewRouter()

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// distribution
	mux.HandleFunc("/batches", rh.ListAvailableBatches).Methods(http.MethodGet)
	mux.HandleFunc("/orders/{id:[0-9]+}/distribution", rh.GetDistribution).Methods(http.MethodGet)
	mux.HandleFunc("/orders/{id:[0-9]+}/distribution", rh.SaveDistribution).Methods(http.MethodPut)

	// picking
	mux.HandleFunc("/picking/orders", rh.ListPickingOrders).Methods(http.MethodGet)
	mux.HandleFunc("/assignments/{id:[0-9]+}", rh.GetAssignment).Methods(http.MethodGet)
	mux.HandleFunc("/assignments/{id:[0-9]+}/picks", rh.RecordPick).Methods(http.MethodPost)

	// quality control
	mux.HandleFunc("/qc/orders", rh.ListOrdersByQCStatus).Methods(http.MethodGet)
	mux.HandleFunc("/assignments/{id:[0-9]+}/qc", rh.GetAssignmentQC).Methods(http.MethodGet)
	mux.HandleFunc("/assignments/{id:[0-9]+}/qc-reviews", rh.SubmitReview).Methods(http.MethodPost)

	// dispatch
	mux.HandleFunc("/orders/{id:[0-9]+}/dispatch", rh.GetDispatchSummary).Methods(http.MethodGet)
	mux.HandleFunc("/orders/{id:[0-9]+}/challans", rh.GenerateChallan).Methods(http.MethodPost)
	mux.HandleFunc("/dispatch-orders/{id:[0-9]+}/ship", rh.MarkDispatched).Methods(http.MethodPost)
	mux.HandleFunc("/orders/{id:[0-9]+}/ledger", rh.GetOrderLedger).Methods(http.MethodGet)

	// service-to-service routes
	internal := mux.PathPrefix("/internal/v1").Subrouter()
	internal.HandleFunc("/dispatch-orders/{id:[0-9]+}/deliver", rh.MarkDelivered).Methods(http.MethodPost)
	internal.HandleFunc("/picks/backfill", rh.BackfillPickedFromNotes).Methods(http.MethodPost)
	internal.Use(InternalMiddleware(cfg.Internal.APIKey))

	// middleware
	mux.Use(LoggingMiddleware())
	mux.Use(AuthMiddleware(cfg.JWT.Secret))

	return mux
}

// pathID reads the numeric {id} route variable.
func pathID(r *http.Request) (uint64, error) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil || id == 0 {
		return 0, errors.SetCustomError(constant.ErrInvalidRequest).WithMessage("invalid id")
	}
	return id, nil
}

// decodeBody decodes the JSON body into req and validates it.
func decodeBody(r *http.Request, req interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}
	if err := validatorx.ValidateStruct(req); err != nil {
		return errors.SetCustomError(constant.ErrInvalidRequest).WithMessage(validatorx.Message(err))
	}
	return nil
}

func currentUser(r *http.Request) (uint64, error) {
	id, ok := utilsContext.GetUserID(r.Context())
	if !ok || id == 0 {
		return 0, errors.SetCustomError(constant.ErrUnauthorize)
	}
	return id, nil
}
