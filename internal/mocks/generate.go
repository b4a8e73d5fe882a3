package mocks

//go:generate mockery --name DatasetStore --srcpkg github.com/storepulse/storepulse/internal/core/storage --output ./storage --outpkg storagemocks --with-expecter
//go:generate mockery --name ReportRunStore --srcpkg github.com/storepulse/storepulse/internal/core/storage --output ./storage --outpkg storagemocks --with-expecter
