package tourpackage

import "errors"

var (
	// ErrPackageNotFound возвращается, когда тур-пакет не найден
	ErrPackageNotFound = errors.New("tourpackage.repository: package not found")

	// ErrInsufficientSlots возвращается, когда условное списание мест не затронуло ни одной строки
	ErrInsufficientSlots = errors.New("tourpackage.repository: insufficient available slots")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("tourpackage.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("tourpackage.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("tourpackage.repository: failed to scan row")
)
