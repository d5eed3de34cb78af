package ecode

// 业务错误码，0表示成功
const (
	Success = 0

	Unknown     = 10001
	ValidateErr = 10002
	NotFoundErr = 10003
	TooManyErr  = 10004

	// 下单校验失败
	NoSymbolSelectedErr  = 20001
	InvalidQuantityErr   = 20002
	InvalidPriceErr      = 20003
	InsufficientFundsErr = 20004
)
