package repository

// Factory describes access to the domain repositories.
type Factory interface {
	Products() ProductRepository
	Orders() OrderRepository
}
