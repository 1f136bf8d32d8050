package config

// NewMongoForTest creates a Mongo config for testing purposes
func NewMongoForTest(secretsPath, user, password, host string, port int, database string) *Mongo {
	return &Mongo{
		secretsPath: secretsPath,
		user:        user,
		password:    password,
		host:        host,
		port:        port,
		database:    database,
	}
}

// NewRepositoryForTest creates a Repository config for testing purposes
func NewRepositoryForTest(backend, projectID string) *Repository {
	return &Repository{
		backend:   backend,
		projectID: projectID,
	}
}

// NewLoggerForTest creates a Logger config for testing purposes
func NewLoggerForTest(level, format, output string) *Logger {
	return &Logger{
		level:  level,
		format: format,
		output: output,
	}
}

// NewCalendarForTest creates a Calendar config for testing purposes
func NewCalendarForTest(timezone string) *Calendar {
	return &Calendar{timezone: timezone}
}
