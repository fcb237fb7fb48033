package service

import "errors"

// 校验类错误（本地拒绝，不发起网络请求）
var (
	ErrCartEmpty           = errors.New("el carrito está vacío")
	ErrObservationsTooLong = errors.New("las observaciones no pueden superar los 500 caracteres")
	ErrProductOutOfStock   = errors.New("este producto está agotado")
	ErrInvalidCredentials  = errors.New("email o contraseña incorrectos")
	ErrInvalidInput        = errors.New("datos inválidos")
)

// 暂时性错误（状态保持不变，可重试）
var (
	ErrOrderSubmitFailed  = errors.New("no se pudo enviar el pedido")
	ErrBackendUnavailable = errors.New("el servidor no está disponible")
)

// 不存在类错误
var (
	ErrProductNotFound = errors.New("producto no encontrado")
	ErrOrderNotFound   = errors.New("pedido no encontrado")
	ErrAccountNotFound = errors.New("cuenta no encontrada")
)

// 本地存储与其他错误
var (
	ErrAlertPersistFailed   = errors.New("no se pudo guardar el aviso de stock")
	ErrCartPersistFailed    = errors.New("no se pudo guardar el carrito")
	ErrSessionPersistFailed = errors.New("no se pudo guardar la sesión")
	ErrRepeatOrderEmpty     = errors.New("no se pudo agregar ningún producto del pedido")
	ErrNotAuthenticated     = errors.New("sesión no iniciada")
)
