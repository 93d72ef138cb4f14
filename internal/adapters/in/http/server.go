package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/DesumovJP/restaraunt-OS-sub004/internal/core/application/usecases/commands"
	"github.com/DesumovJP/restaraunt-OS-sub004/internal/core/application/usecases/queries"
	"github.com/DesumovJP/restaraunt-OS-sub004/internal/core/domain/model/kernel"
	"github.com/DesumovJP/restaraunt-OS-sub004/internal/core/domain/model/lifecycle"
	"github.com/DesumovJP/restaraunt-OS-sub004/internal/generated/servers"
	"github.com/DesumovJP/restaraunt-OS-sub004/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderItemHandler        commands.CreateOrderItemCommandHandler
	receiveStorageBatchHandler    commands.ReceiveStorageBatchCommandHandler
	transitionOrderItemHandler    commands.TransitionOrderItemCommandHandler
	transitionStorageBatchHandler commands.TransitionStorageBatchCommandHandler
	consumeStorageBatchHandler    commands.ConsumeStorageBatchCommandHandler
	undoTransitionHandler         commands.UndoTransitionCommandHandler

	// Query handlers
	getEntityHistoryHandler      queries.GetEntityHistoryQueryHandler
	getEventsByKindHandler       queries.GetEventsByKindQueryHandler
	getAllowedTransitionsHandler queries.GetAllowedTransitionsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderItemHandler commands.CreateOrderItemCommandHandler,
	receiveStorageBatchHandler commands.ReceiveStorageBatchCommandHandler,
	transitionOrderItemHandler commands.TransitionOrderItemCommandHandler,
	transitionStorageBatchHandler commands.TransitionStorageBatchCommandHandler,
	consumeStorageBatchHandler commands.ConsumeStorageBatchCommandHandler,
	undoTransitionHandler commands.UndoTransitionCommandHandler,
	getEntityHistoryHandler queries.GetEntityHistoryQueryHandler,
	getEventsByKindHandler queries.GetEventsByKindQueryHandler,
	getAllowedTransitionsHandler queries.GetAllowedTransitionsQueryHandler,
) *Server {
	return &Server{
		createOrderItemHandler:        createOrderItemHandler,
		receiveStorageBatchHandler:    receiveStorageBatchHandler,
		transitionOrderItemHandler:    transitionOrderItemHandler,
		transitionStorageBatchHandler: transitionStorageBatchHandler,
		consumeStorageBatchHandler:    consumeStorageBatchHandler,
		undoTransitionHandler:         undoTransitionHandler,
		getEntityHistoryHandler:       getEntityHistoryHandler,
		getEventsByKindHandler:        getEventsByKindHandler,
		getAllowedTransitionsHandler:  getAllowedTransitionsHandler,
	}
}

// CreateOrderItem handles POST /api/v1/order-items - registers a new order line.
func (s *Server) CreateOrderItem(ctx echo.Context) error {
	var newItem servers.NewOrderItem
	if err := ctx.Bind(&newItem); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromBytes(newItem.OrderId[:])
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order id: "+err.Error())
	}

	itemID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderItemCommand(itemID, orderID, newItem.Dish, newItem.Quantity)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order item data: "+err.Error())
	}

	if handleErr := s.createOrderItemHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, statusOf(handleErr), "Failed to create order item")
	}

	return ctx.JSON(http.StatusCreated, servers.Created{Id: itemID.Bytes()})
}

// CreateStorageBatch handles POST /api/v1/storage-batches - registers a received batch.
func (s *Server) CreateStorageBatch(ctx echo.Context) error {
	var newBatch servers.NewStorageBatch
	if err := ctx.Bind(&newBatch); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	batchID := kernel.NewUUID()
	cmd, err := commands.NewReceiveStorageBatchCommand(
		batchID, newBatch.Ingredient, newBatch.GrossIn, newBatch.ReceivedAt, newBatch.BestBefore,
	)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid storage batch data: "+err.Error())
	}

	if handleErr := s.receiveStorageBatchHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, statusOf(handleErr), "Failed to create storage batch")
	}

	return ctx.JSON(http.StatusCreated, servers.Created{Id: batchID.Bytes()})
}

// TransitionOrderItem handles POST /api/v1/order-items/{itemId}/transitions.
func (s *Server) TransitionOrderItem(ctx echo.Context, itemId openapi_types.UUID) error {
	var request servers.TransitionRequest
	if err := ctx.Bind(&request); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	itemID, err := kernel.UUIDFromBytes(itemId[:])
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid item id: "+err.Error())
	}

	actor, err := actorOf(request.ActorId, request.ActorRole)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid actor: "+err.Error())
	}

	cmd, err := commands.NewTransitionOrderItemCommand(
		itemID, lifecycle.State(request.Target), actor, noteOf(request.Note),
	)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid transition data: "+err.Error())
	}

	event, err := s.transitionOrderItemHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, statusOf(err), err.Error())
	}

	return ctx.JSON(http.StatusOK, eventOf(event))
}

// TransitionStorageBatch handles POST /api/v1/storage-batches/{batchId}/transitions.
func (s *Server) TransitionStorageBatch(ctx echo.Context, batchId openapi_types.UUID) error {
	var request servers.TransitionRequest
	if err := ctx.Bind(&request); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	batchID, err := kernel.UUIDFromBytes(batchId[:])
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid batch id: "+err.Error())
	}

	actor, err := actorOf(request.ActorId, request.ActorRole)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid actor: "+err.Error())
	}

	cmd, err := commands.NewTransitionStorageBatchCommand(
		batchID, lifecycle.State(request.Target), actor, noteOf(request.Note),
	)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid transition data: "+err.Error())
	}

	event, err := s.transitionStorageBatchHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, statusOf(err), err.Error())
	}

	return ctx.JSON(http.StatusOK, eventOf(event))
}

// DrawStorageBatch handles POST /api/v1/storage-batches/{batchId}/draws.
func (s *Server) DrawStorageBatch(ctx echo.Context, batchId openapi_types.UUID) error {
	var request servers.DrawRequest
	if err := ctx.Bind(&request); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	batchID, err := kernel.UUIDFromBytes(batchId[:])
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid batch id: "+err.Error())
	}

	actor, err := actorOf(request.ActorId, request.ActorRole)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid actor: "+err.Error())
	}

	cmd, err := commands.NewConsumeStorageBatchCommand(batchID, request.Amount, actor)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid draw data: "+err.Error())
	}

	event, err := s.consumeStorageBatchHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, statusOf(err), err.Error())
	}

	return ctx.JSON(http.StatusOK, eventOf(event))
}

// UndoEvent handles POST /api/v1/events/{eventId}/undo.
func (s *Server) UndoEvent(ctx echo.Context, eventId openapi_types.UUID) error {
	var request servers.UndoRequest
	if err := ctx.Bind(&request); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	eventID, err := kernel.UUIDFromBytes(eventId[:])
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid event id: "+err.Error())
	}

	actor, err := actorOf(request.ActorId, request.ActorRole)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid actor: "+err.Error())
	}

	cmd, err := commands.NewUndoTransitionCommand(eventID, actor, noteOf(request.Reason))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid undo data: "+err.Error())
	}

	compensating, err := s.undoTransitionHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, statusOf(err), err.Error())
	}

	return ctx.JSON(http.StatusOK, eventOf(compensating))
}

// GetOrderItemEvents handles GET /api/v1/order-items/{itemId}/events.
func (s *Server) GetOrderItemEvents(ctx echo.Context, itemId openapi_types.UUID) error {
	return s.entityEvents(ctx, itemId)
}

// GetStorageBatchEvents handles GET /api/v1/storage-batches/{batchId}/events.
func (s *Server) GetStorageBatchEvents(ctx echo.Context, batchId openapi_types.UUID) error {
	return s.entityEvents(ctx, batchId)
}

func (s *Server) entityEvents(ctx echo.Context, id openapi_types.UUID) error {
	entityID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid entity id: "+err.Error())
	}

	query, err := queries.NewGetEntityHistoryQuery(entityID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid entity id: "+err.Error())
	}

	history, err := s.getEntityHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to retrieve events")
	}

	response := make([]servers.Event, len(history))
	for i, event := range history {
		response[i] = servers.Event{
			Id:             event.EventID.Bytes(),
			Seq:            event.Seq,
			Kind:           event.Kind.String(),
			EntityId:       entityID.Bytes(),
			FromState:      event.FromState.String(),
			ToState:        event.ToState.String(),
			ActorId:        event.ActorID.Bytes(),
			ActorRole:      string(event.ActorRole),
			OccurredAt:     event.OccurredAt,
			IsCompensating: event.IsCompensating,
		}
		if event.Note != "" {
			note := event.Note
			response[i].Note = &note
		}
		if event.CompensatesEventID != nil {
			compensates := event.CompensatesEventID.Bytes()
			response[i].CompensatesEventId = &compensates
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetEvents handles GET /api/v1/events - kind-scoped events within a time range.
func (s *Server) GetEvents(ctx echo.Context, params servers.GetEventsParams) error {
	query, err := queries.NewGetEventsByKindQuery(lifecycle.Kind(params.Kind), params.From, params.To)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid query: "+err.Error())
	}

	events, err := s.getEventsByKindHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to retrieve events")
	}

	response := make([]servers.Event, len(events))
	for i, event := range events {
		response[i] = servers.Event{
			Id:             event.EventID.Bytes(),
			Seq:            event.Seq,
			Kind:           params.Kind,
			EntityId:       event.EntityID.Bytes(),
			FromState:      event.FromState.String(),
			ToState:        event.ToState.String(),
			ActorId:        event.ActorID.Bytes(),
			ActorRole:      string(event.ActorRole),
			OccurredAt:     event.OccurredAt,
			IsCompensating: event.IsCompensating,
		}
		if event.Note != "" {
			note := event.Note
			response[i].Note = &note
		}
		if event.CompensatesEventID != nil {
			compensates := event.CompensatesEventID.Bytes()
			response[i].CompensatesEventId = &compensates
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetAllowedTransitions handles GET /api/v1/transitions - action affordances.
func (s *Server) GetAllowedTransitions(ctx echo.Context, params servers.GetAllowedTransitionsParams) error {
	query, err := queries.NewGetAllowedTransitionsQuery(
		lifecycle.Kind(params.Kind), lifecycle.State(params.From),
	)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid query: "+err.Error())
	}

	transitions, err := s.getAllowedTransitionsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to retrieve transitions")
	}

	response := make([]servers.AllowedTransition, len(transitions))
	for i, transition := range transitions {
		roles := make([]string, len(transition.AllowedRoles))
		for j, role := range transition.AllowedRoles {
			roles[j] = string(role)
		}

		response[i] = servers.AllowedTransition{
			To:                transition.To.String(),
			AllowedRoles:      roles,
			RequiresAuditNote: transition.RequiresAuditNote,
			Reversible:        transition.IsReversible,
		}
		if transition.IsReversible {
			window := int64(transition.ReversibleWindow / time.Second)
			response[i].ReversibleWindow = &window
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func actorOf(id openapi_types.UUID, role string) (kernel.Actor, error) {
	actorID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return kernel.Actor{}, err
	}
	return kernel.NewActor(actorID, kernel.Role(role))
}

func noteOf(note *string) string {
	if note == nil {
		return ""
	}
	return *note
}

func eventOf(event lifecycle.EventRecord) servers.Event {
	response := servers.Event{
		Id:             event.ID().Bytes(),
		Seq:            event.Seq(),
		Kind:           event.Kind().String(),
		EntityId:       event.EntityID().Bytes(),
		FromState:      event.FromState().String(),
		ToState:        event.ToState().String(),
		ActorId:        event.ActorID().Bytes(),
		ActorRole:      string(event.ActorRole()),
		OccurredAt:     event.OccurredAt(),
		IsCompensating: event.IsCompensating(),
	}
	if event.Note() != "" {
		note := event.Note()
		response.Note = &note
	}
	if compensates := event.CompensatesEventID(); compensates != nil {
		id := compensates.Bytes()
		response.CompensatesEventId = &id
	}
	return response
}

// statusOf maps engine rejections to HTTP status codes. Domain rejections are
// expected outcomes; only infrastructure faults surface as 500.
func statusOf(err error) int {
	var notFound *errs.ObjectNotFoundError

	switch {
	case errors.As(err, &notFound), errors.Is(err, lifecycle.ErrEventNotFound):
		return http.StatusNotFound
	case errors.Is(err, lifecycle.ErrTransitionForbidden):
		return http.StatusForbidden
	case errors.Is(err, lifecycle.ErrAuditNoteRequired):
		return http.StatusBadRequest
	case errors.Is(err, lifecycle.ErrTransitionNotAllowed),
		errors.Is(err, lifecycle.ErrStateConflict),
		errors.Is(err, lifecycle.ErrNotReversible),
		errors.Is(err, lifecycle.ErrNoInverseRule),
		errors.Is(err, lifecycle.ErrUndoWindowExpired),
		errors.Is(err, lifecycle.ErrAlreadyCompensated):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func errorResponse(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, servers.Error{
		Code:    int32(code),
		Message: message,
	})
}
