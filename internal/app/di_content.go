package app

import (
	"fmt"

	contentHTTP "github.com/trivalleytech/site-api/internal/content/http"
	contentRepository "github.com/trivalleytech/site-api/internal/content/repository"
	contentUseCase "github.com/trivalleytech/site-api/internal/content/usecase"
)

// ProjectRepository returns the project repository based on database driver.
func (c *Container) ProjectRepository() (contentUseCase.ProjectRepository, error) {
	var err error
	c.projectRepoInit.Do(func() {
		c.projectRepo, err = c.initProjectRepository()
		if err != nil {
			c.initErrors["projectRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["projectRepo"]; exists {
		return nil, storedErr
	}
	return c.projectRepo, nil
}

// ArticleRepository returns the article repository based on database driver.
func (c *Container) ArticleRepository() (contentUseCase.ArticleRepository, error) {
	var err error
	c.articleRepoInit.Do(func() {
		c.articleRepo, err = c.initArticleRepository()
		if err != nil {
			c.initErrors["articleRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["articleRepo"]; exists {
		return nil, storedErr
	}
	return c.articleRepo, nil
}

// ProjectUseCase returns the project use case.
func (c *Container) ProjectUseCase() (contentUseCase.ProjectUseCase, error) {
	var err error
	c.projectUseCaseInit.Do(func() {
		c.projectUseCase, err = c.initProjectUseCase()
		if err != nil {
			c.initErrors["projectUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["projectUseCase"]; exists {
		return nil, storedErr
	}
	return c.projectUseCase, nil
}

// ArticleUseCase returns the article use case.
func (c *Container) ArticleUseCase() (contentUseCase.ArticleUseCase, error) {
	var err error
	c.articleUseCaseInit.Do(func() {
		c.articleUseCase, err = c.initArticleUseCase()
		if err != nil {
			c.initErrors["articleUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["articleUseCase"]; exists {
		return nil, storedErr
	}
	return c.articleUseCase, nil
}

// ProjectHandler returns the HTTP handler for project operations.
func (c *Container) ProjectHandler() (*contentHTTP.ProjectHandler, error) {
	var err error
	c.projectHandlerInit.Do(func() {
		c.projectHandler, err = c.initProjectHandler()
		if err != nil {
			c.initErrors["projectHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["projectHandler"]; exists {
		return nil, storedErr
	}
	return c.projectHandler, nil
}

// ArticleHandler returns the HTTP handler for article operations.
func (c *Container) ArticleHandler() (*contentHTTP.ArticleHandler, error) {
	var err error
	c.articleHandlerInit.Do(func() {
		c.articleHandler, err = c.initArticleHandler()
		if err != nil {
			c.initErrors["articleHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["articleHandler"]; exists {
		return nil, storedErr
	}
	return c.articleHandler, nil
}

// initProjectRepository creates the project repository based on the database driver.
func (c *Container) initProjectRepository() (contentUseCase.ProjectRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for project repository: %w", err)
	}

	switch c.config.DBDriver {
	case "postgres":
		return contentRepository.NewPostgreSQLProjectRepository(db), nil
	case "mysql":
		return contentRepository.NewMySQLProjectRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initArticleRepository creates the article repository based on the database driver.
func (c *Container) initArticleRepository() (contentUseCase.ArticleRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for article repository: %w", err)
	}

	switch c.config.DBDriver {
	case "postgres":
		return contentRepository.NewPostgreSQLArticleRepository(db), nil
	case "mysql":
		return contentRepository.NewMySQLArticleRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initProjectUseCase creates the project use case with all its dependencies.
func (c *Container) initProjectUseCase() (contentUseCase.ProjectUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for project use case: %w", err)
	}

	projectRepo, err := c.ProjectRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get project repository for project use case: %w", err)
	}

	baseUseCase := contentUseCase.NewProjectUseCase(txManager, projectRepo)

	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for project use case: %w", err)
		}
		return contentUseCase.NewProjectUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

// initArticleUseCase creates the article use case with all its dependencies.
func (c *Container) initArticleUseCase() (contentUseCase.ArticleUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for article use case: %w", err)
	}

	articleRepo, err := c.ArticleRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get article repository for article use case: %w", err)
	}

	baseUseCase := contentUseCase.NewArticleUseCase(txManager, articleRepo)

	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for article use case: %w", err)
		}
		return contentUseCase.NewArticleUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

// initProjectHandler creates the project HTTP handler.
func (c *Container) initProjectHandler() (*contentHTTP.ProjectHandler, error) {
	projectUseCase, err := c.ProjectUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get project use case for project handler: %w", err)
	}

	return contentHTTP.NewProjectHandler(projectUseCase, c.Logger()), nil
}

// initArticleHandler creates the article HTTP handler.
func (c *Container) initArticleHandler() (*contentHTTP.ArticleHandler, error) {
	articleUseCase, err := c.ArticleUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get article use case for article handler: %w", err)
	}

	return contentHTTP.NewArticleHandler(articleUseCase, c.Logger()), nil
}
