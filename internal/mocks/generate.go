package mocks

//go:generate mockery --name EventStore --srcpkg github.com/horizon-lab/project-horizon/internal/core/storage --output ./storage --outpkg storagemocks --with-expecter
//go:generate mockery --name ProfileStore --srcpkg github.com/horizon-lab/project-horizon/internal/core/storage --output ./storage --outpkg storagemocks --with-expecter
