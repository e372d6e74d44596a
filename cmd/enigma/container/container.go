package container

import (
	"go.uber.org/fx"

	"github.com/sergeii/enigma/internal/core/usecases/encrypttext"
	"github.com/sergeii/enigma/internal/core/usecases/getconfig"
	"github.com/sergeii/enigma/internal/core/usecases/listconfigs"
	"github.com/sergeii/enigma/internal/core/usecases/removeconfig"
	"github.com/sergeii/enigma/internal/core/usecases/saveconfig"
)

type Container struct {
	SaveConfig   saveconfig.UseCase
	GetConfig    getconfig.UseCase
	ListConfigs  listconfigs.UseCase
	RemoveConfig removeconfig.UseCase
	EncryptText  encrypttext.UseCase
}

func New(
	saveConfigUseCase saveconfig.UseCase,
	getConfigUseCase getconfig.UseCase,
	listConfigsUseCase listconfigs.UseCase,
	removeConfigUseCase removeconfig.UseCase,
	encryptTextUseCase encrypttext.UseCase,
) Container {
	return Container{
		SaveConfig:   saveConfigUseCase,
		GetConfig:    getConfigUseCase,
		ListConfigs:  listConfigsUseCase,
		RemoveConfig: removeConfigUseCase,
		EncryptText:  encryptTextUseCase,
	}
}

var Module = fx.Module("container",
	fx.Provide(saveconfig.New),
	fx.Provide(getconfig.New),
	fx.Provide(listconfigs.New),
	fx.Provide(removeconfig.New),
	fx.Provide(encrypttext.New),
	fx.Provide(New),
)
