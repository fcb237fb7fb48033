package shared

import "fmt"

var messages = map[string]string{
	"error.bad_request":            "solicitud inválida",
	"error.unauthorized":           "no autorizado",
	"error.token_invalid":          "token inválido o vencido",
	"error.invalid_credentials":    "credenciales incorrectas",
	"error.login_failed":           "error al iniciar sesión",
	"error.product_not_found":      "producto no encontrado",
	"error.product_fetch_failed":   "no se pudieron obtener los productos",
	"error.stock_invalid":          "stock inválido",
	"error.restock_failed":         "no se pudo actualizar el stock",
	"error.order_invalid":          "pedido inválido",
	"error.order_not_found":        "pedido no encontrado",
	"error.order_create_failed":    "no se pudo crear el pedido",
	"error.order_fetch_failed":     "no se pudieron obtener los pedidos",
	"error.account_not_found":      "cuenta no encontrada",
	"error.account_fetch_failed":   "no se pudo obtener la cuenta",
	"error.alert_invalid":          "aviso de stock inválido",
	"error.alert_create_failed":    "no se pudo registrar el aviso",
	"error.not_found":              "recurso no encontrado",
	"error.rate_limited":           "demasiados intentos, esperá %d segundos",
	"error.rate_limit_unavailable": "servicio de límite no disponible",
	"error.internal":               "error interno",
}

// Tf 返回格式化后的文案
func Tf(key string, args ...interface{}) string {
	return fmt.Sprintf(T(key), args...)
}

// T 返回消息键对应的文案，未定义时返回键本身
func T(key string) string {
	if msg, ok := messages[key]; ok {
		return msg
	}
	return key
}
