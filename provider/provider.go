package provider

import (
	"school-hub/biz/application/service"
	"school-hub/biz/infrastructure/config"
	"school-hub/biz/infrastructure/redis"
	"school-hub/biz/infrastructure/repository/class"
	"school-hub/biz/infrastructure/repository/message"
	"school-hub/biz/infrastructure/repository/resource"
	"school-hub/biz/infrastructure/repository/schedule"
	"school-hub/biz/infrastructure/repository/user"

	"github.com/google/wire"
)

var provider *Provider

func Init() {
	var err error
	provider, err = NewProvider()
	if err != nil {
		panic(err)
	}
}

// Provider 提供controller依赖的对象
type Provider struct {
	Config          *config.Config
	UserService     service.IUserService
	ClassService    service.IClassService
	ResourceService service.IResourceService
	ScheduleService service.IScheduleService
	MessageService  service.IMessageService
}

func Get() *Provider {
	return provider
}

var ApplicationSet = wire.NewSet(
	service.UserServiceSet,
	service.ClassServiceSet,
	service.ResourceServiceSet,
	service.ScheduleServiceSet,
	service.MessageServiceSet,
)

var MapperSet = wire.NewSet(
	user.NewMongoMapper,
	wire.Bind(new(user.IMongoMapper), new(*user.MongoMapper)),
	class.NewMongoMapper,
	wire.Bind(new(class.IMongoMapper), new(*class.MongoMapper)),
	class.NewMemberMongoMapper,
	wire.Bind(new(class.IMemberMongoMapper), new(*class.MemberMongoMapper)),
	resource.NewMongoMapper,
	wire.Bind(new(resource.IMongoMapper), new(*resource.MongoMapper)),
	schedule.NewMongoMapper,
	wire.Bind(new(schedule.IMongoMapper), new(*schedule.MongoMapper)),
	message.NewMongoMapper,
	wire.Bind(new(message.IMongoMapper), new(*message.MongoMapper)),
)

var InfrastructureSet = wire.NewSet(
	config.NewConfig,
	redis.NewLocker,
	MapperSet,
)

var AllProvider = wire.NewSet(
	ApplicationSet,
	InfrastructureSet,
)
