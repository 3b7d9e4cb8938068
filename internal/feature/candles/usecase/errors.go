package usecase

import "errors"

var (
	// ErrSymbolRequired は銘柄コードが空の場合に返されます。
	ErrSymbolRequired = errors.New("symbol is required")

	// ErrInvalidRange は開始日が終了日より後の場合に返されます。
	ErrInvalidRange = errors.New("from date is after to date")

	// ErrNoBars は指定範囲に日足が1件も無い場合に返されます。
	ErrNoBars = errors.New("no bars in range")
)
