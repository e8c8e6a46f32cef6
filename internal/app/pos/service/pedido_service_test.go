package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"rostipos/internal/app/pos/entity"
	"rostipos/internal/app/pos/repository"
	"rostipos/internal/app/pos/repository/mocks"
)

func pedidoRequest() *entity.GuardarPedidoRequest {
	return &entity.GuardarPedidoRequest{
		MesaID: 1,
		Items: []entity.PedidoItemRequest{
			{ArticuloID: ptrUint(7), Nombre: "Pollo entero", Cantidad: 2, Precio: ptrFloat(45)},
		},
		Total: ptrFloat(90),
	}
}

func TestGuardarPedido_Create(t *testing.T) {
	// Arrange
	pedidoRepo := new(mocks.MockPedidoRepository)
	mesaRepo := new(mocks.MockMesaRepository)
	cache := new(mocks.MockRedisCache)
	producer := new(mocks.MockMessagePublisher)
	svc := NewPedidoService(pedidoRepo, mesaRepo, cache, producer)
	ctx := context.Background()

	mesaRepo.On("GetByID", ctx, uint(1)).Return(&entity.Mesa{ID: 1, Nombre: "Mesa 1"}, nil)
	pedidoRepo.On("Save", ctx, mock.AnythingOfType("*entity.Pedido"), mock.AnythingOfType("[]entity.PedidoItem")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.Pedido).ID = 42
		}).
		Return(nil)
	cache.On("DeleteEstadisticas", ctx).Return(nil)
	producer.On("PublishMessage", ctx, "42", mock.Anything).Return(nil)

	// Act
	pedidoID, actualizado, err := svc.GuardarPedido(ctx, pedidoRequest())

	// Assert
	assert.NoError(t, err)
	assert.EqualValues(t, 42, pedidoID)
	assert.False(t, actualizado)

	savedPedido := pedidoRepo.Calls[0].Arguments.Get(1).(*entity.Pedido)
	assert.Equal(t, entity.EstadoPendiente, savedPedido.Estado)
	assert.Equal(t, uint(1), savedPedido.MesaID)
	assert.Equal(t, 90.0, savedPedido.Total)
	assert.NotEmpty(t, savedPedido.Fecha)

	savedItems := pedidoRepo.Calls[0].Arguments.Get(2).([]entity.PedidoItem)
	assert.Len(t, savedItems, 1)
	assert.Equal(t, "Pollo entero", savedItems[0].Nombre)
	assert.Equal(t, 2, savedItems[0].Cantidad)
	assert.Equal(t, 45.0, savedItems[0].Precio)

	pedidoRepo.AssertExpectations(t)
	producer.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestGuardarPedido_Edit(t *testing.T) {
	pedidoRepo := new(mocks.MockPedidoRepository)
	mesaRepo := new(mocks.MockMesaRepository)
	svc := NewPedidoService(pedidoRepo, mesaRepo, nil, nil)
	ctx := context.Background()

	mesaRepo.On("GetByID", ctx, uint(1)).Return(&entity.Mesa{ID: 1}, nil)
	pedidoRepo.On("Save", ctx, mock.AnythingOfType("*entity.Pedido"), mock.AnythingOfType("[]entity.PedidoItem")).
		Return(nil)

	req := pedidoRequest()
	req.PedidoID = ptrUint(17)

	pedidoID, actualizado, err := svc.GuardarPedido(ctx, req)

	assert.NoError(t, err)
	assert.EqualValues(t, 17, pedidoID)
	assert.True(t, actualizado)
}

func TestGuardarPedido_EditNotFound(t *testing.T) {
	pedidoRepo := new(mocks.MockPedidoRepository)
	mesaRepo := new(mocks.MockMesaRepository)
	svc := NewPedidoService(pedidoRepo, mesaRepo, nil, nil)
	ctx := context.Background()

	mesaRepo.On("GetByID", ctx, uint(1)).Return(&entity.Mesa{ID: 1}, nil)
	pedidoRepo.On("Save", ctx, mock.Anything, mock.Anything).Return(repository.ErrPedidoNotFound)

	req := pedidoRequest()
	req.PedidoID = ptrUint(999)

	_, _, err := svc.GuardarPedido(ctx, req)

	assert.ErrorIs(t, err, ErrPedidoNotFound)
}

func TestGuardarPedido_MesaNotFound(t *testing.T) {
	pedidoRepo := new(mocks.MockPedidoRepository)
	mesaRepo := new(mocks.MockMesaRepository)
	svc := NewPedidoService(pedidoRepo, mesaRepo, nil, nil)
	ctx := context.Background()

	mesaRepo.On("GetByID", ctx, uint(1)).Return(nil, repository.ErrMesaNotFound)

	_, _, err := svc.GuardarPedido(ctx, pedidoRequest())

	assert.ErrorIs(t, err, ErrPedidoMesaNotFound)
	pedidoRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
}

// A Kafka failure never fails the request; the pedido is already stored.
func TestGuardarPedido_KafkaFailureIsIgnored(t *testing.T) {
	pedidoRepo := new(mocks.MockPedidoRepository)
	mesaRepo := new(mocks.MockMesaRepository)
	producer := new(mocks.MockMessagePublisher)
	svc := NewPedidoService(pedidoRepo, mesaRepo, nil, producer)
	ctx := context.Background()

	mesaRepo.On("GetByID", ctx, uint(1)).Return(&entity.Mesa{ID: 1}, nil)
	pedidoRepo.On("Save", ctx, mock.Anything, mock.Anything).Return(nil)
	producer.On("PublishMessage", ctx, mock.Anything, mock.Anything).
		Return(assert.AnError)

	_, _, err := svc.GuardarPedido(ctx, pedidoRequest())

	assert.NoError(t, err)
}

func TestUpdateEstado_ValidTransition(t *testing.T) {
	pedidoRepo := new(mocks.MockPedidoRepository)
	svc := NewPedidoService(pedidoRepo, nil, nil, nil)
	ctx := context.Background()

	pedidoRepo.On("GetByID", ctx, uint(5)).
		Return(&entity.Pedido{ID: 5, Estado: entity.EstadoPendiente}, nil)
	pedidoRepo.On("UpdateEstado", ctx, uint(5), entity.EstadoEnPreparacion).Return(nil)

	err := svc.UpdateEstado(ctx, 5, entity.EstadoEnPreparacion)

	assert.NoError(t, err)
	pedidoRepo.AssertExpectations(t)
}

func TestUpdateEstado_InvalidTransition(t *testing.T) {
	pedidoRepo := new(mocks.MockPedidoRepository)
	svc := NewPedidoService(pedidoRepo, nil, nil, nil)
	ctx := context.Background()

	pedidoRepo.On("GetByID", ctx, uint(5)).
		Return(&entity.Pedido{ID: 5, Estado: entity.EstadoCompletado}, nil)

	err := svc.UpdateEstado(ctx, 5, entity.EstadoPendiente)

	assert.ErrorIs(t, err, ErrEstadoTransicion)
	pedidoRepo.AssertNotCalled(t, "UpdateEstado", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateEstado_CancelarDesdePreparacion(t *testing.T) {
	pedidoRepo := new(mocks.MockPedidoRepository)
	svc := NewPedidoService(pedidoRepo, nil, nil, nil)
	ctx := context.Background()

	pedidoRepo.On("GetByID", ctx, uint(5)).
		Return(&entity.Pedido{ID: 5, Estado: entity.EstadoEnPreparacion}, nil)
	pedidoRepo.On("UpdateEstado", ctx, uint(5), entity.EstadoCancelado).Return(nil)

	err := svc.UpdateEstado(ctx, 5, entity.EstadoCancelado)

	assert.NoError(t, err)
}

func TestUpdateEstado_NotFound(t *testing.T) {
	pedidoRepo := new(mocks.MockPedidoRepository)
	svc := NewPedidoService(pedidoRepo, nil, nil, nil)
	ctx := context.Background()

	pedidoRepo.On("GetByID", ctx, uint(99)).Return(nil, repository.ErrPedidoNotFound)

	err := svc.UpdateEstado(ctx, 99, entity.EstadoCompletado)

	assert.ErrorIs(t, err, ErrPedidoNotFound)
}

func TestDeletePedido_Success(t *testing.T) {
	pedidoRepo := new(mocks.MockPedidoRepository)
	cache := new(mocks.MockRedisCache)
	producer := new(mocks.MockMessagePublisher)
	svc := NewPedidoService(pedidoRepo, nil, cache, producer)
	ctx := context.Background()

	pedidoRepo.On("Delete", ctx, uint(7)).Return(nil)
	cache.On("DeleteEstadisticas", ctx).Return(nil)
	producer.On("PublishMessage", ctx, "7", mock.Anything).Return(nil)

	err := svc.DeletePedido(ctx, 7)

	assert.NoError(t, err)
	pedidoRepo.AssertExpectations(t)
	producer.AssertExpectations(t)
}

func TestDeletePedido_NotFound(t *testing.T) {
	pedidoRepo := new(mocks.MockPedidoRepository)
	svc := NewPedidoService(pedidoRepo, nil, nil, nil)
	ctx := context.Background()

	pedidoRepo.On("Delete", ctx, uint(99)).Return(repository.ErrPedidoNotFound)

	err := svc.DeletePedido(ctx, 99)

	assert.ErrorIs(t, err, ErrPedidoNotFound)
}
