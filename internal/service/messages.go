package service

import "fmt"

// 用户提示文案
const (
	msgOrderSubmitFailed = "Hubo un error al confirmar el pedido. Intentá nuevamente."
	msgAlertFailed       = "Error al registrar aviso. Intentá nuevamente."
	msgRepeatOrderEmpty  = "No se pudieron agregar los productos al carrito"
	msgRepeatOrderFailed = "Error al repetir el pedido"
)

func msgOrderConfirmed(displayNumber string) string {
	return fmt.Sprintf("¡Pedido %s confirmado exitosamente!", displayNumber)
}

func msgRepeatOrderAdded(units int) string {
	return fmt.Sprintf("%d productos agregados al carrito", units)
}

func msgAddedToCart(title string) string {
	return fmt.Sprintf("%q agregado al carrito", title)
}
