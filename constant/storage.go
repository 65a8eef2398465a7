package constant

// Storage keys shared by every storage driver.
const (
	ProductsDataKey   = "products_data"
	CartDataKeyPrefix = "cart_data:"
	AdminTokenPrefix  = "admin_token:"
)

const (
	StorageDriverMemory = "memory"
	StorageDriverBolt   = "bolt"
	StorageDriverRedis  = "redis"
	StorageDriverMySQL  = "mysql"
)
