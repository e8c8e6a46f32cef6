package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"rostipos/internal/app/pos/entity"
	"rostipos/internal/app/pos/repository"
	"rostipos/internal/app/pos/util"
	"rostipos/pkg/logger"
	"rostipos/pkg/metrics"
)

var (
	ErrPedidoNotFound     = errors.New("pedido not found")
	ErrEstadoTransicion   = errors.New("invalid estado transition")
	ErrPedidoMesaNotFound = errors.New("mesa for pedido not found")
)

// transicionesEstado lists the allowed next states from each state.
// Terminal states have no outgoing transitions.
var transicionesEstado = map[entity.EstadoPedido][]entity.EstadoPedido{
	entity.EstadoPendiente:     {entity.EstadoEnPreparacion, entity.EstadoCancelado},
	entity.EstadoEnPreparacion: {entity.EstadoCompletado, entity.EstadoCancelado},
	entity.EstadoCompletado:    {},
	entity.EstadoCancelado:     {},
}

// PedidoService handles the order lifecycle. Writes invalidate the
// cached estadisticas and emit best-effort events for the kitchen display.
type PedidoService struct {
	pedidoRepo repository.PedidoRepository
	mesaRepo   repository.MesaRepository
	cache      util.RedisCache
	producer   util.MessagePublisher
}

func NewPedidoService(
	pedidoRepo repository.PedidoRepository,
	mesaRepo repository.MesaRepository,
	cache util.RedisCache,
	producer util.MessagePublisher,
) *PedidoService {
	return &PedidoService{
		pedidoRepo: pedidoRepo,
		mesaRepo:   mesaRepo,
		cache:      cache,
		producer:   producer,
	}
}

// GuardarPedido creates a pedido, or fully replaces an existing one when
// req.PedidoID is set. It returns the pedido ID and whether this was an
// edit. Item names and prices are stored as sent, as snapshots of the
// menu at order time.
func (s *PedidoService) GuardarPedido(ctx context.Context, req *entity.GuardarPedidoRequest) (uint, bool, error) {
	if _, err := s.mesaRepo.GetByID(ctx, req.MesaID); err != nil {
		if errors.Is(err, repository.ErrMesaNotFound) {
			return 0, false, ErrPedidoMesaNotFound
		}
		return 0, false, fmt.Errorf("failed to verify mesa: %w", err)
	}

	pedido := &entity.Pedido{
		Fecha:  time.Now().Format(entity.FechaFormato),
		MesaID: req.MesaID,
		Total:  *req.Total,
		Estado: entity.EstadoPendiente,
	}
	actualizado := req.PedidoID != nil && *req.PedidoID != 0
	if actualizado {
		pedido.ID = *req.PedidoID
	}

	items := make([]entity.PedidoItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, entity.PedidoItem{
			ArticuloID: it.ArticuloID,
			Nombre:     it.Nombre,
			Cantidad:   it.Cantidad,
			Precio:     *it.Precio,
		})
	}

	if err := s.pedidoRepo.Save(ctx, pedido, items); err != nil {
		if errors.Is(err, repository.ErrPedidoNotFound) {
			return 0, false, ErrPedidoNotFound
		}
		return 0, false, fmt.Errorf("failed to save pedido: %w", err)
	}

	if actualizado {
		metrics.PedidosUpdated.Inc()
	} else {
		metrics.PedidosCreated.Inc()
	}
	metrics.PedidosTotalAmount.Add(pedido.Total)

	s.invalidateEstadisticas(ctx)

	eventType := "PEDIDO_CREATED"
	if actualizado {
		eventType = "PEDIDO_UPDATED"
	}
	s.publishPedidoEvent(ctx, entity.PedidoEvent{
		EventType:  eventType,
		PedidoID:   pedido.ID,
		MesaID:     pedido.MesaID,
		Total:      pedido.Total,
		Estado:     pedido.Estado,
		ItemsCount: len(items),
		Timestamp:  time.Now(),
	})

	return pedido.ID, actualizado, nil
}

func (s *PedidoService) GetPedidos(ctx context.Context) ([]entity.PedidoResumen, error) {
	pedidos, err := s.pedidoRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get pedidos: %w", err)
	}
	return pedidos, nil
}

func (s *PedidoService) GetPedidoDetalle(ctx context.Context, id uint) (*entity.PedidoDetalle, error) {
	detalle, err := s.pedidoRepo.GetDetalle(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPedidoNotFound) {
			return nil, ErrPedidoNotFound
		}
		return nil, fmt.Errorf("failed to get pedido: %w", err)
	}
	return detalle, nil
}

// UpdateEstado advances the pedido through its lifecycle. Only the
// transitions in transicionesEstado are allowed.
func (s *PedidoService) UpdateEstado(ctx context.Context, id uint, estado entity.EstadoPedido) error {
	pedido, err := s.pedidoRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPedidoNotFound) {
			return ErrPedidoNotFound
		}
		return fmt.Errorf("failed to get pedido: %w", err)
	}

	permitido := false
	for _, siguiente := range transicionesEstado[pedido.Estado] {
		if siguiente == estado {
			permitido = true
			break
		}
	}
	if !permitido {
		return ErrEstadoTransicion
	}

	if err := s.pedidoRepo.UpdateEstado(ctx, id, estado); err != nil {
		if errors.Is(err, repository.ErrPedidoNotFound) {
			return ErrPedidoNotFound
		}
		return fmt.Errorf("failed to update estado: %w", err)
	}

	metrics.PedidosByStatus.WithLabelValues(string(estado)).Inc()
	s.invalidateEstadisticas(ctx)

	s.publishPedidoEvent(ctx, entity.PedidoEvent{
		EventType: "PEDIDO_STATUS_CHANGED",
		PedidoID:  id,
		MesaID:    pedido.MesaID,
		Total:     pedido.Total,
		Estado:    estado,
		Timestamp: time.Now(),
	})

	return nil
}

func (s *PedidoService) DeletePedido(ctx context.Context, id uint) error {
	if err := s.pedidoRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrPedidoNotFound) {
			return ErrPedidoNotFound
		}
		return fmt.Errorf("failed to delete pedido: %w", err)
	}

	s.invalidateEstadisticas(ctx)

	s.publishPedidoEvent(ctx, entity.PedidoEvent{
		EventType: "PEDIDO_DELETED",
		PedidoID:  id,
		Timestamp: time.Now(),
	})

	return nil
}

func (s *PedidoService) invalidateEstadisticas(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeleteEstadisticas(ctx); err != nil {
		logger.Warn().Err(err).Msg("Failed to invalidate estadisticas cache")
	}
}

// publishPedidoEvent is best effort: the pedido is already persisted,
// a Kafka failure only gets logged.
func (s *PedidoService) publishPedidoEvent(ctx context.Context, event entity.PedidoEvent) {
	if s.producer == nil {
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to marshal pedido event")
		return
	}

	key := strconv.FormatUint(uint64(event.PedidoID), 10)
	if err := s.producer.PublishMessage(ctx, key, data); err != nil {
		logger.Error().Err(err).Str("event_type", event.EventType).Msg("Failed to publish pedido event")
	}
}
