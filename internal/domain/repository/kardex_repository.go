package repository

import "github.com/serodominguez/waresoft-api/internal/domain/entity"

// KardexRepository define el puerto de lectura del kardex: normaliza las líneas
// de entradas, salidas y traslados no anulados que tocan un producto en una
// sucursal a movimientos con signo (el saldo corrido lo calcula el dominio).
type KardexRepository interface {
	ListMovements(storeID, productID int64) ([]entity.KardexMovement, error)
}
