// Package http exposes the parcel custody operations over a JSON REST API.
// Every mutating route runs behind the JWT middleware; the caller's identity
// and role come from the verified token, never from the payload.
package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/chiefroqa/baruk-app/internal/core/application/usecases/commands"
	"github.com/chiefroqa/baruk-app/internal/core/application/usecases/queries"
	"github.com/chiefroqa/baruk-app/internal/core/domain/model/kernel"
	"github.com/chiefroqa/baruk-app/internal/core/domain/model/parcel"
	"github.com/chiefroqa/baruk-app/internal/pkg/errs"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createParcelHandler      commands.CreateParcelCommandHandler
	acceptCollectionHandler  commands.AcceptCollectionCommandHandler
	markAtWarehouseHandler   commands.MarkAtWarehouseCommandHandler
	acceptDeliveryHandler    commands.AcceptDeliveryCommandHandler
	dispatchParcelHandler    commands.DispatchParcelCommandHandler
	verifyHandoffCodeHandler commands.VerifyHandoffCodeCommandHandler
	markDeliveredHandler     commands.MarkDeliveredCommandHandler
	createRiderHandler       commands.CreateRiderCommandHandler

	// Query handlers
	trackParcelHandler          queries.TrackParcelQueryHandler
	getUnassignedParcelsHandler queries.GetUnassignedParcelsQueryHandler
	getCustodyLogHandler        queries.GetCustodyLogQueryHandler
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	createParcelHandler commands.CreateParcelCommandHandler,
	acceptCollectionHandler commands.AcceptCollectionCommandHandler,
	markAtWarehouseHandler commands.MarkAtWarehouseCommandHandler,
	acceptDeliveryHandler commands.AcceptDeliveryCommandHandler,
	dispatchParcelHandler commands.DispatchParcelCommandHandler,
	verifyHandoffCodeHandler commands.VerifyHandoffCodeCommandHandler,
	markDeliveredHandler commands.MarkDeliveredCommandHandler,
	createRiderHandler commands.CreateRiderCommandHandler,
	trackParcelHandler queries.TrackParcelQueryHandler,
	getUnassignedParcelsHandler queries.GetUnassignedParcelsQueryHandler,
	getCustodyLogHandler queries.GetCustodyLogQueryHandler,
) *Server {
	return &Server{
		createParcelHandler:         createParcelHandler,
		acceptCollectionHandler:     acceptCollectionHandler,
		markAtWarehouseHandler:      markAtWarehouseHandler,
		acceptDeliveryHandler:       acceptDeliveryHandler,
		dispatchParcelHandler:       dispatchParcelHandler,
		verifyHandoffCodeHandler:    verifyHandoffCodeHandler,
		markDeliveredHandler:        markDeliveredHandler,
		createRiderHandler:          createRiderHandler,
		trackParcelHandler:          trackParcelHandler,
		getUnassignedParcelsHandler: getUnassignedParcelsHandler,
		getCustodyLogHandler:        getCustodyLogHandler,
	}
}

// RegisterRoutes mounts the API under /api/v1. Tracking is public; every
// other route requires a valid token.
func (s *Server) RegisterRoutes(e *echo.Echo, jwtSecret string) {
	e.GET("/api/v1/tracking/:code", s.TrackParcel)

	api := e.Group("/api/v1", AuthMiddleware(jwtSecret))
	api.POST("/parcels", s.CreateParcel)
	api.GET("/parcels/unassigned", s.GetUnassignedParcels)
	api.GET("/parcels/:id/custody", s.GetCustodyLog)
	api.POST("/parcels/:id/accept-collection", s.AcceptCollection)
	api.POST("/parcels/:id/at-warehouse", s.MarkAtWarehouse)
	api.POST("/parcels/:id/accept-delivery", s.AcceptDelivery)
	api.POST("/parcels/:id/dispatch", s.DispatchParcel)
	api.POST("/parcels/:id/verify-code", s.VerifyHandoffCode)
	api.POST("/parcels/:id/delivered", s.MarkDelivered)
	api.POST("/riders", s.CreateRider)
}

// CreateParcel handles POST /api/v1/parcels - places a new parcel order.
// The creation response is the only place the customer sees the handoff
// codes of a high-value parcel.
func (s *Server) CreateParcel(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return writeError(c, err)
	}

	var req CreateParcelRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	zone, err := kernel.ZoneFromString(req.DeliveryZone)
	if err != nil {
		return writeError(c, err)
	}

	route, err := parcel.NewRoute(req.PickupAddress, req.DeliveryAddress, zone)
	if err != nil {
		return writeError(c, err)
	}

	size, err := parcel.SizeClassFromString(req.SizeClass)
	if err != nil {
		return writeError(c, err)
	}

	cmd, err := commands.NewCreateParcelCommand(kernel.NewUUID(), actor, route, req.Description, size, req.DeclaredValue)
	if err != nil {
		return writeError(c, err)
	}

	p, err := s.createParcelHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, toParcelResponse(p, true))
}

// AcceptCollection handles POST /api/v1/parcels/:id/accept-collection -
// a rider claims the pickup job. Exactly one rider wins.
func (s *Server) AcceptCollection(c echo.Context) error {
	actor, parcelID, err := actorAndParcelID(c)
	if err != nil {
		return writeError(c, err)
	}

	cmd, err := commands.NewAcceptCollectionCommand(actor, parcelID)
	if err != nil {
		return writeError(c, err)
	}

	p, err := s.acceptCollectionHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, toParcelResponse(p, false))
}

// MarkAtWarehouse handles POST /api/v1/parcels/:id/at-warehouse - the
// collection rider reports the hub handoff.
func (s *Server) MarkAtWarehouse(c echo.Context) error {
	actor, parcelID, err := actorAndParcelID(c)
	if err != nil {
		return writeError(c, err)
	}

	cmd, err := commands.NewMarkAtWarehouseCommand(actor, parcelID)
	if err != nil {
		return writeError(c, err)
	}

	p, err := s.markAtWarehouseHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, toParcelResponse(p, false))
}

// AcceptDelivery handles POST /api/v1/parcels/:id/accept-delivery - a rider
// claims the delivery job for a parcel at the warehouse.
func (s *Server) AcceptDelivery(c echo.Context) error {
	actor, parcelID, err := actorAndParcelID(c)
	if err != nil {
		return writeError(c, err)
	}

	cmd, err := commands.NewAcceptDeliveryCommand(actor, parcelID)
	if err != nil {
		return writeError(c, err)
	}

	p, err := s.acceptDeliveryHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, toParcelResponse(p, false))
}

// DispatchParcel handles POST /api/v1/parcels/:id/dispatch - an admin
// assigns a delivery rider and sends the parcel out for delivery.
func (s *Server) DispatchParcel(c echo.Context) error {
	actor, parcelID, err := actorAndParcelID(c)
	if err != nil {
		return writeError(c, err)
	}

	var req DispatchParcelRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	riderID, err := kernel.UUIDFromString(req.RiderID)
	if err != nil {
		return writeError(c, errs.NewValueIsInvalidErrorWithCause("rider id", err))
	}

	cmd, err := commands.NewDispatchParcelCommand(actor, parcelID, riderID, req.Override)
	if err != nil {
		return writeError(c, err)
	}

	p, err := s.dispatchParcelHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, toParcelResponse(p, false))
}

// VerifyHandoffCode handles POST /api/v1/parcels/:id/verify-code - a rider
// submits a handoff code at the warehouse or delivery gate.
func (s *Server) VerifyHandoffCode(c echo.Context) error {
	actor, parcelID, err := actorAndParcelID(c)
	if err != nil {
		return writeError(c, err)
	}

	var req VerifyCodeRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	cmd, err := commands.NewVerifyHandoffCodeCommand(actor, parcelID, commands.HandoffGate(req.Gate), req.Code)
	if err != nil {
		return writeError(c, err)
	}

	p, err := s.verifyHandoffCodeHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, toParcelResponse(p, false))
}

// MarkDelivered handles POST /api/v1/parcels/:id/delivered - the delivery
// rider confirms the final handoff.
func (s *Server) MarkDelivered(c echo.Context) error {
	actor, parcelID, err := actorAndParcelID(c)
	if err != nil {
		return writeError(c, err)
	}

	cmd, err := commands.NewMarkDeliveredCommand(actor, parcelID)
	if err != nil {
		return writeError(c, err)
	}

	p, err := s.markDeliveredHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, toParcelResponse(p, false))
}

// CreateRider handles POST /api/v1/riders - an admin registers a rider.
func (s *Server) CreateRider(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return writeError(c, err)
	}

	var req CreateRiderRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	zone, err := kernel.ZoneFromString(req.HomeZone)
	if err != nil {
		return writeError(c, err)
	}

	cmd, err := commands.NewCreateRiderCommand(actor, req.Name, zone)
	if err != nil {
		return writeError(c, err)
	}

	r, err := s.createRiderHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, toRiderResponse(r))
}

// TrackParcel handles GET /api/v1/tracking/:code - the public tracking view.
func (s *Server) TrackParcel(c echo.Context) error {
	query, err := queries.NewTrackParcelQuery(c.Param("code"))
	if err != nil {
		return writeError(c, err)
	}

	view, err := s.trackParcelHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, view)
}

// GetUnassignedParcels handles GET /api/v1/parcels/unassigned - lists
// parcels still searching for a collection rider.
func (s *Server) GetUnassignedParcels(c echo.Context) error {
	parcels, err := s.getUnassignedParcelsHandler.Handle(c.Request().Context(), queries.NewGetUnassignedParcelsQuery())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, parcels)
}

// GetCustodyLog handles GET /api/v1/parcels/:id/custody - returns the full
// custody trail of a parcel, oldest entry first.
func (s *Server) GetCustodyLog(c echo.Context) error {
	parcelID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return writeError(c, errs.NewValueIsInvalidErrorWithCause("parcel id", err))
	}

	query, err := queries.NewGetCustodyLogQuery(parcelID)
	if err != nil {
		return writeError(c, err)
	}

	entries, err := s.getCustodyLogHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	response := make([]CustodyEntryResponse, len(entries))
	for i, entry := range entries {
		response[i] = CustodyEntryResponse{
			ID:        entry.ID.String(),
			ActorID:   entry.ActorID.String(),
			ActorRole: entry.ActorRole,
			Kind:      entry.Kind,
			Location:  entry.Location,
			Note:      entry.Note,
			CreatedAt: entry.CreatedAt,
		}
	}

	return c.JSON(http.StatusOK, response)
}

func actorFrom(c echo.Context) (commands.Actor, error) {
	principal, ok := principalFrom(c)
	if !ok {
		return commands.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "missing principal")
	}
	return principal.Actor()
}

func actorAndParcelID(c echo.Context) (commands.Actor, kernel.UUID, error) {
	actor, err := actorFrom(c)
	if err != nil {
		return commands.Actor{}, kernel.UUID{}, err
	}

	parcelID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return commands.Actor{}, kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("parcel id", err)
	}

	return actor, parcelID, nil
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, errorBody{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
