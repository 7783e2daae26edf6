package reclaim_expired

import "time"

// Response модель результата уборки истекших бронирований
type Response struct {
	Deleted int64     // сколько строк удалено этим запуском
	AsOf    time.Time // момент времени, относительно которого считалось "истекло"
}
