package consts

var (
	PageSize    int64 = 10
	MaxPageSize int64 = 100
)

// 数据库相关
const (
	ID         = "_id"
	UserID     = "user_id"
	ClassID    = "class_id"
	RoleKey    = "role"
	Email      = "email"
	CreateTime = "create_time"
	UpdateTime = "update_time"
	DayOfWeek  = "day_of_week"
	SenderID   = "sender_id"
	ReceiverID = "receiver_id"
	NotEqual   = "$ne"
	In         = "$in"
	Or         = "$or"
	Set        = "$set"
	AddToSet   = "$addToSet"
	Pull       = "$pull"
	Inc        = "$inc"
)

// http
const (
	ContentTypeJson = "application/json"
	Authorization   = "Authorization"
	BearerPrefix    = "Bearer "
	RequestIDHeader = "X-Request-ID"
)

// 默认值
const (
	MinPasswordLen      = 6
	DefaultLockExpire   = 5
	DeletedUserName     = "Deleted user"
	ScheduleLockPrefix  = "lock:schedule"
	DefaultAccessExpire = 7 * 24 * 3600
)
