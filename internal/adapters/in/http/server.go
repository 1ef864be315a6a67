// Package http exposes the coordinator over REST. Caller identity
// arrives in the X-User-Id header, resolved upstream by the auth
// collaborator; the adapter only parses it into a UUID and hands it to
// the use cases, which enforce ownership.
package http

import (
	stdhttp "net/http"

	"foodbridge/internal/core/application/usecases/commands"
	"foodbridge/internal/core/application/usecases/queries"
	"foodbridge/internal/core/domain/model/donation"
	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const userIDHeader = "X-User-Id"

// Server wires HTTP routes to command and query handlers.
type Server struct {
	createDonationHandler     commands.CreateDonationCommandHandler
	updateDonationHandler     commands.UpdateDonationCommandHandler
	deleteDonationHandler     commands.DeleteDonationCommandHandler
	requestDonationHandler    commands.RequestDonationCommandHandler
	respondToRequestHandler   commands.RespondToRequestCommandHandler
	cancelRequestHandler      commands.CancelRequestCommandHandler
	advanceDeliveryHandler    commands.AdvanceDeliveryCommandHandler
	availableDonationsHandler queries.GetAvailableDonationsQueryHandler
	myDonationsHandler        queries.GetMyDonationsQueryHandler
	sentRequestsHandler       queries.GetSentRequestsQueryHandler
	receivedRequestsHandler   queries.GetReceivedRequestsQueryHandler
	myDeliveriesHandler       queries.GetMyDeliveriesQueryHandler
}

// NewServer creates the HTTP server over the given handlers.
func NewServer(
	createDonationHandler commands.CreateDonationCommandHandler,
	updateDonationHandler commands.UpdateDonationCommandHandler,
	deleteDonationHandler commands.DeleteDonationCommandHandler,
	requestDonationHandler commands.RequestDonationCommandHandler,
	respondToRequestHandler commands.RespondToRequestCommandHandler,
	cancelRequestHandler commands.CancelRequestCommandHandler,
	advanceDeliveryHandler commands.AdvanceDeliveryCommandHandler,
	availableDonationsHandler queries.GetAvailableDonationsQueryHandler,
	myDonationsHandler queries.GetMyDonationsQueryHandler,
	sentRequestsHandler queries.GetSentRequestsQueryHandler,
	receivedRequestsHandler queries.GetReceivedRequestsQueryHandler,
	myDeliveriesHandler queries.GetMyDeliveriesQueryHandler,
) *Server {
	return &Server{
		createDonationHandler:     createDonationHandler,
		updateDonationHandler:     updateDonationHandler,
		deleteDonationHandler:     deleteDonationHandler,
		requestDonationHandler:    requestDonationHandler,
		respondToRequestHandler:   respondToRequestHandler,
		cancelRequestHandler:      cancelRequestHandler,
		advanceDeliveryHandler:    advanceDeliveryHandler,
		availableDonationsHandler: availableDonationsHandler,
		myDonationsHandler:        myDonationsHandler,
		sentRequestsHandler:       sentRequestsHandler,
		receivedRequestsHandler:   receivedRequestsHandler,
		myDeliveriesHandler:       myDeliveriesHandler,
	}
}

// RegisterRoutes attaches every coordinator route under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	v1 := e.Group("/api/v1")

	v1.POST("/donations", s.CreateDonation)
	v1.GET("/donations", s.GetDonations)
	v1.GET("/donations/mine", s.GetMyDonations)
	v1.PATCH("/donations/:id", s.UpdateDonation)
	v1.DELETE("/donations/:id", s.DeleteDonation)
	v1.POST("/donations/:id/requests", s.RequestDonation)

	v1.GET("/requests/sent", s.GetSentRequests)
	v1.GET("/requests/received", s.GetReceivedRequests)
	v1.PATCH("/requests/:id/status", s.RespondToRequest)
	v1.DELETE("/requests/:id", s.CancelRequest)

	v1.GET("/deliveries/mine", s.GetMyDeliveries)
	v1.PATCH("/deliveries/:id/status", s.AdvanceDelivery)
}

func callerID(ctx echo.Context) (kernel.UUID, error) {
	raw := ctx.Request().Header.Get(userIDHeader)
	if raw == "" {
		return kernel.UUID{}, errs.NewValidationError(userIDHeader)
	}
	return kernel.UUIDFromString(raw)
}

func pathID(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param("id"))
}

// CreateDonation handles POST /api/v1/donations.
//
//	@Summary	List new food for donation
//	@Tags		donations
//	@Accept		json
//	@Produce	json
//	@Param		X-User-Id	header	string					true	"Donor ID"
//	@Param		donation	body	CreateDonationRequest	true	"Donation"
//	@Success	201	{object}	CreatedResponse
//	@Failure	400	{object}	Error
//	@Router		/donations [post]
func (s *Server) CreateDonation(ctx echo.Context) error {
	donorID, err := callerID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var body CreateDonationRequest
	if err = ctx.Bind(&body); err != nil {
		return respondError(ctx, errs.NewValidationErrorWithCause("body", err))
	}

	foodType, err := donation.FoodTypeFromString(body.FoodType)
	if err != nil {
		return respondError(ctx, err)
	}

	var location *kernel.Location
	if body.Latitude != nil && body.Longitude != nil {
		loc, locErr := kernel.NewLocation(*body.Latitude, *body.Longitude)
		if locErr != nil {
			return respondError(ctx, locErr)
		}
		location = &loc
	}

	donationID := kernel.NewUUID()

	cmd, err := commands.NewCreateDonationCommand(
		donationID,
		donorID,
		body.Title,
		body.Description,
		foodType,
		body.Quantity,
		body.PickupLocation,
		body.ImageURL,
		location,
		body.BestBefore,
		body.Allergens,
		body.DietaryInfo,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.createDonationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(stdhttp.StatusCreated, CreatedResponse{ID: donationID.String()})
}

// GetDonations handles GET /api/v1/donations.
//
//	@Summary	Browse the donation feed
//	@Tags		donations
//	@Produce	json
//	@Param		foodType	query	string	false	"Food type filter"
//	@Param		status		query	string	false	"Status filter, defaults to Available"
//	@Success	200	{array}	Donation
//	@Router		/donations [get]
func (s *Server) GetDonations(ctx echo.Context) error {
	var foodType *donation.FoodType
	if raw := ctx.QueryParam("foodType"); raw != "" {
		ft, err := donation.FoodTypeFromString(raw)
		if err != nil {
			return respondError(ctx, err)
		}
		foodType = &ft
	}

	var status *donation.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		st, err := donation.StatusFromString(raw)
		if err != nil {
			return respondError(ctx, err)
		}
		status = &st
	}

	query, err := queries.NewGetAvailableDonationsQuery(foodType, status)
	if err != nil {
		return respondError(ctx, err)
	}

	views, err := s.availableDonationsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]Donation, len(views))
	for i, view := range views {
		response[i] = donationFromView(view)
	}

	return ctx.JSON(stdhttp.StatusOK, response)
}

// GetMyDonations handles GET /api/v1/donations/mine.
//
//	@Summary	List the caller's own donations
//	@Tags		donations
//	@Produce	json
//	@Param		X-User-Id	header	string	true	"Donor ID"
//	@Success	200	{array}	Donation
//	@Router		/donations/mine [get]
func (s *Server) GetMyDonations(ctx echo.Context) error {
	donorID, err := callerID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetMyDonationsQuery(donorID)
	if err != nil {
		return respondError(ctx, err)
	}

	views, err := s.myDonationsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]Donation, len(views))
	for i, view := range views {
		response[i] = donationFromView(view)
	}

	return ctx.JSON(stdhttp.StatusOK, response)
}

// UpdateDonation handles PATCH /api/v1/donations/:id.
//
//	@Summary	Edit a donation listing
//	@Tags		donations
//	@Accept		json
//	@Param		X-User-Id	header	string					true	"Donor ID"
//	@Param		id			path	string					true	"Donation ID"
//	@Param		donation	body	UpdateDonationRequest	true	"Changed fields"
//	@Success	204
//	@Failure	403	{object}	Error
//	@Failure	409	{object}	Error
//	@Router		/donations/{id} [patch]
func (s *Server) UpdateDonation(ctx echo.Context) error {
	donorID, err := callerID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	donationID, err := pathID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var body UpdateDonationRequest
	if err = ctx.Bind(&body); err != nil {
		return respondError(ctx, errs.NewValidationErrorWithCause("body", err))
	}

	var foodType *donation.FoodType
	if body.FoodType != nil {
		ft, ftErr := donation.FoodTypeFromString(*body.FoodType)
		if ftErr != nil {
			return respondError(ctx, ftErr)
		}
		foodType = &ft
	}

	var location *kernel.Location
	if body.Latitude != nil && body.Longitude != nil {
		loc, locErr := kernel.NewLocation(*body.Latitude, *body.Longitude)
		if locErr != nil {
			return respondError(ctx, locErr)
		}
		location = &loc
	}

	cmd, err := commands.NewUpdateDonationCommand(
		donationID,
		donorID,
		body.Title,
		body.Description,
		foodType,
		body.Quantity,
		body.PickupLocation,
		body.ImageURL,
		location,
		body.BestBefore,
		body.Allergens,
		body.DietaryInfo,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.updateDonationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(stdhttp.StatusNoContent)
}

// DeleteDonation handles DELETE /api/v1/donations/:id.
//
//	@Summary	Delete a donation and its requests
//	@Tags		donations
//	@Param		X-User-Id	header	string	true	"Donor ID"
//	@Param		id			path	string	true	"Donation ID"
//	@Success	204
//	@Failure	403	{object}	Error
//	@Failure	404	{object}	Error
//	@Router		/donations/{id} [delete]
func (s *Server) DeleteDonation(ctx echo.Context) error {
	donorID, err := callerID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	donationID, err := pathID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewDeleteDonationCommand(donationID, donorID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.deleteDonationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(stdhttp.StatusNoContent)
}

// RequestDonation handles POST /api/v1/donations/:id/requests.
//
//	@Summary	Request an available donation
//	@Tags		requests
//	@Accept		json
//	@Produce	json
//	@Param		X-User-Id	header	string					true	"Receiver ID"
//	@Param		id			path	string					true	"Donation ID"
//	@Param		request		body	RequestDonationRequest	true	"Request"
//	@Success	201	{object}	CreatedResponse
//	@Failure	409	{object}	Error
//	@Router		/donations/{id}/requests [post]
func (s *Server) RequestDonation(ctx echo.Context) error {
	receiverID, err := callerID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	donationID, err := pathID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var body RequestDonationRequest
	if err = ctx.Bind(&body); err != nil {
		return respondError(ctx, errs.NewValidationErrorWithCause("body", err))
	}

	requestID := kernel.NewUUID()

	cmd, err := commands.NewRequestDonationCommand(requestID, donationID, receiverID, body.Message)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.requestDonationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(stdhttp.StatusCreated, CreatedResponse{ID: requestID.String()})
}

// GetSentRequests handles GET /api/v1/requests/sent.
//
//	@Summary	List the caller's outgoing requests
//	@Tags		requests
//	@Produce	json
//	@Param		X-User-Id	header	string	true	"Receiver ID"
//	@Success	200	{array}	Request
//	@Router		/requests/sent [get]
func (s *Server) GetSentRequests(ctx echo.Context) error {
	receiverID, err := callerID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetSentRequestsQuery(receiverID)
	if err != nil {
		return respondError(ctx, err)
	}

	views, err := s.sentRequestsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]Request, len(views))
	for i, view := range views {
		response[i] = requestFromView(view)
	}

	return ctx.JSON(stdhttp.StatusOK, response)
}

// GetReceivedRequests handles GET /api/v1/requests/received.
//
//	@Summary	List requests against the caller's donations
//	@Tags		requests
//	@Produce	json
//	@Param		X-User-Id	header	string	true	"Donor ID"
//	@Success	200	{array}	Request
//	@Router		/requests/received [get]
func (s *Server) GetReceivedRequests(ctx echo.Context) error {
	donorID, err := callerID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetReceivedRequestsQuery(donorID)
	if err != nil {
		return respondError(ctx, err)
	}

	views, err := s.receivedRequestsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]Request, len(views))
	for i, view := range views {
		response[i] = requestFromView(view)
	}

	return ctx.JSON(stdhttp.StatusOK, response)
}

// RespondToRequest handles PATCH /api/v1/requests/:id/status.
//
//	@Summary	Approve or reject a request
//	@Tags		requests
//	@Accept		json
//	@Param		X-User-Id	header	string					true	"Donor ID"
//	@Param		id			path	string					true	"Request ID"
//	@Param		decision	body	RespondToRequestRequest	true	"Decision"
//	@Success	204
//	@Failure	403	{object}	Error
//	@Failure	409	{object}	Error
//	@Router		/requests/{id}/status [patch]
func (s *Server) RespondToRequest(ctx echo.Context) error {
	donorID, err := callerID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	requestID, err := pathID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var body RespondToRequestRequest
	if err = ctx.Bind(&body); err != nil {
		return respondError(ctx, errs.NewValidationErrorWithCause("body", err))
	}

	decision, err := commands.DecisionFromString(body.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	var deliveryPersonID *kernel.UUID
	if body.DeliveryPersonID != "" {
		driverID, idErr := kernel.UUIDFromString(body.DeliveryPersonID)
		if idErr != nil {
			return respondError(ctx, idErr)
		}
		deliveryPersonID = &driverID
	}

	cmd, err := commands.NewRespondToRequestCommand(requestID, donorID, decision, deliveryPersonID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.respondToRequestHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(stdhttp.StatusNoContent)
}

// CancelRequest handles DELETE /api/v1/requests/:id.
//
//	@Summary	Cancel the caller's request
//	@Tags		requests
//	@Param		X-User-Id	header	string	true	"Receiver ID"
//	@Param		id			path	string	true	"Request ID"
//	@Success	204
//	@Failure	403	{object}	Error
//	@Failure	409	{object}	Error
//	@Router		/requests/{id} [delete]
func (s *Server) CancelRequest(ctx echo.Context) error {
	receiverID, err := callerID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	requestID, err := pathID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCancelRequestCommand(requestID, receiverID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.cancelRequestHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(stdhttp.StatusNoContent)
}

// GetMyDeliveries handles GET /api/v1/deliveries/mine.
//
//	@Summary	List the caller's delivery assignments
//	@Tags		deliveries
//	@Produce	json
//	@Param		X-User-Id	header	string	true	"Delivery person ID"
//	@Success	200	{array}	Request
//	@Router		/deliveries/mine [get]
func (s *Server) GetMyDeliveries(ctx echo.Context) error {
	deliveryPersonID, err := callerID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetMyDeliveriesQuery(deliveryPersonID)
	if err != nil {
		return respondError(ctx, err)
	}

	views, err := s.myDeliveriesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]Request, len(views))
	for i, view := range views {
		response[i] = requestFromView(view)
	}

	return ctx.JSON(stdhttp.StatusOK, response)
}

// AdvanceDelivery handles PATCH /api/v1/deliveries/:id/status.
//
//	@Summary	Report pickup or drop-off
//	@Tags		deliveries
//	@Accept		json
//	@Param		X-User-Id	header	string					true	"Delivery person ID"
//	@Param		id			path	string					true	"Request ID"
//	@Param		stage		body	AdvanceDeliveryRequest	true	"Milestone"
//	@Success	204
//	@Failure	403	{object}	Error
//	@Failure	409	{object}	Error
//	@Router		/deliveries/{id}/status [patch]
func (s *Server) AdvanceDelivery(ctx echo.Context) error {
	deliveryPersonID, err := callerID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	requestID, err := pathID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var body AdvanceDeliveryRequest
	if err = ctx.Bind(&body); err != nil {
		return respondError(ctx, errs.NewValidationErrorWithCause("body", err))
	}

	stage, err := commands.StageFromString(body.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAdvanceDeliveryCommand(requestID, deliveryPersonID, stage)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.advanceDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(stdhttp.StatusNoContent)
}
