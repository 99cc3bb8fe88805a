package services

// ServiceContainer holds instances of all the application services.
// Handlers and the CLI reach every service through it.
type ServiceContainer struct {
	Entity      EntitySvcFacade
	Transaction TransactionSvc
	Ledger      LedgerSvc
	Dashboard   DashboardSvc
	Settings    SettingsSvc
	Backup      BackupSvc
	Export      ExportSvc
	Auth        AuthSvc
	Health      HealthSvc
}
