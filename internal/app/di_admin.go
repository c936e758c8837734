package app

import (
	"fmt"

	adminHTTP "github.com/trivalleytech/site-api/internal/admin/http"
	adminRepository "github.com/trivalleytech/site-api/internal/admin/repository"
	adminService "github.com/trivalleytech/site-api/internal/admin/service"
	adminUseCase "github.com/trivalleytech/site-api/internal/admin/usecase"
)

// AccessTokenRepository returns the access token repository based on database driver.
func (c *Container) AccessTokenRepository() (adminUseCase.AccessTokenRepository, error) {
	var err error
	c.accessTokenRepoInit.Do(func() {
		c.accessTokenRepo, err = c.initAccessTokenRepository()
		if err != nil {
			c.initErrors["accessTokenRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["accessTokenRepo"]; exists {
		return nil, storedErr
	}
	return c.accessTokenRepo, nil
}

// TokenService returns the token generation and hashing service.
func (c *Container) TokenService() adminService.TokenService {
	c.tokenServiceInit.Do(func() {
		c.tokenService = adminService.NewTokenService()
	})
	return c.tokenService
}

// ResultCache returns the shared access-check result cache.
func (c *Container) ResultCache() *adminUseCase.ResultCache {
	c.resultCacheInit.Do(func() {
		c.resultCache = adminUseCase.NewResultCache(c.config.AdminGateCacheTTL)
	})
	return c.resultCache
}

// TokenAuthority returns the token authority use case.
func (c *Container) TokenAuthority() (adminUseCase.TokenAuthority, error) {
	var err error
	c.tokenAuthorityInit.Do(func() {
		c.tokenAuthority, err = c.initTokenAuthority()
		if err != nil {
			c.initErrors["tokenAuthority"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["tokenAuthority"]; exists {
		return nil, storedErr
	}
	return c.tokenAuthority, nil
}

// AccessGate returns the access gate use case.
func (c *Container) AccessGate() (adminUseCase.AccessGate, error) {
	var err error
	c.accessGateInit.Do(func() {
		c.accessGate, err = c.initAccessGate()
		if err != nil {
			c.initErrors["accessGate"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["accessGate"]; exists {
		return nil, storedErr
	}
	return c.accessGate, nil
}

// AccessHandler returns the HTTP handler for admin access checks.
func (c *Container) AccessHandler() (*adminHTTP.AccessHandler, error) {
	var err error
	c.accessHandlerInit.Do(func() {
		c.accessHandler, err = c.initAccessHandler()
		if err != nil {
			c.initErrors["accessHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["accessHandler"]; exists {
		return nil, storedErr
	}
	return c.accessHandler, nil
}

// initAccessTokenRepository creates the access token repository based on the database driver.
func (c *Container) initAccessTokenRepository() (adminUseCase.AccessTokenRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for access token repository: %w", err)
	}

	switch c.config.DBDriver {
	case "postgres":
		return adminRepository.NewPostgreSQLAccessTokenRepository(db), nil
	case "mysql":
		return adminRepository.NewMySQLAccessTokenRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initTokenAuthority creates the token authority with all its dependencies.
func (c *Container) initTokenAuthority() (adminUseCase.TokenAuthority, error) {
	tokenRepo, err := c.AccessTokenRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get access token repository for token authority: %w", err)
	}

	baseAuthority := adminUseCase.NewTokenAuthority(
		c.config,
		tokenRepo,
		c.TokenService(),
		c.ResultCache(),
	)

	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for token authority: %w", err)
		}
		return adminUseCase.NewTokenAuthorityWithMetrics(baseAuthority, businessMetrics), nil
	}

	return baseAuthority, nil
}

// initAccessGate creates the access gate with all its dependencies.
func (c *Container) initAccessGate() (adminUseCase.AccessGate, error) {
	tokenRepo, err := c.AccessTokenRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get access token repository for access gate: %w", err)
	}

	baseGate := adminUseCase.NewAccessGate(
		c.config,
		tokenRepo,
		c.TokenService(),
		c.ResultCache(),
		c.Logger(),
	)

	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for access gate: %w", err)
		}
		return adminUseCase.NewAccessGateWithMetrics(baseGate, businessMetrics), nil
	}

	return baseGate, nil
}

// initAccessHandler creates the admin access HTTP handler.
func (c *Container) initAccessHandler() (*adminHTTP.AccessHandler, error) {
	accessGate, err := c.AccessGate()
	if err != nil {
		return nil, fmt.Errorf("failed to get access gate for access handler: %w", err)
	}

	return adminHTTP.NewAccessHandler(accessGate, c.Logger()), nil
}
