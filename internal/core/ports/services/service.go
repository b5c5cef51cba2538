package services

// ServiceContainer holds all service interfaces needed by the HTTP layer.
type ServiceContainer struct {
	User               UserSvcFacade
	Currency           CurrencySvcFacade
	Movement           MovementSvcFacade
	Goal               GoalSvcFacade
	FX                 FXSvcFacade
	TokenService       TokenSvcFacade
	GoogleOAuthHandler GoogleOAuthHandlerSvcFacade
}
