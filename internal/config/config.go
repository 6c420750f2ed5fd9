// Copyright (c) 2025 Afonso Barracha
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	port              int64
	env               string
	serviceName       string
	maxIncludeDepth   int64
	defaultPageSize   int64
	maxPageSize       int64
	rateLimiterMax    int64
	rateLimiterExpSec int64
	loggerConfig      LoggerConfig
}

func (c *Config) Port() int64 {
	return c.port
}

func (c *Config) Env() string {
	return c.env
}

func (c *Config) ServiceName() string {
	return c.serviceName
}

func (c *Config) MaxIncludeDepth() int64 {
	return c.maxIncludeDepth
}

func (c *Config) DefaultPageSize() int64 {
	return c.defaultPageSize
}

func (c *Config) MaxPageSize() int64 {
	return c.maxPageSize
}

func (c *Config) RateLimiterMax() int64 {
	return c.rateLimiterMax
}

func (c *Config) RateLimiterExpSec() int64 {
	return c.rateLimiterExpSec
}

func (c *Config) LoggerConfig() LoggerConfig {
	return c.loggerConfig
}

var variables = [9]string{
	"PORT",
	"ENV",
	"DEBUG",
	"SERVICE_NAME",
	"MAX_INCLUDE_DEPTH",
	"DEFAULT_PAGE_SIZE",
	"MAX_PAGE_SIZE",
	"RATE_LIMITER_MAX",
	"RATE_LIMITER_EXP_SEC",
}

var numerics = [6]string{
	"PORT",
	"MAX_INCLUDE_DEPTH",
	"DEFAULT_PAGE_SIZE",
	"MAX_PAGE_SIZE",
	"RATE_LIMITER_MAX",
	"RATE_LIMITER_EXP_SEC",
}

func NewConfig(logger *slog.Logger, envPath string) Config {
	err := godotenv.Load(envPath)
	if err != nil {
		logger.Error("Error loading .env file")
	}

	variablesMap := make(map[string]string)
	for _, variable := range variables {
		value := os.Getenv(variable)
		if value == "" {
			logger.Error(variable + " is not set")
			panic(variable + " is not set")
		}
		variablesMap[variable] = value
	}

	intMap := make(map[string]int64)
	for _, numeric := range numerics {
		value, err := strconv.ParseInt(variablesMap[numeric], 10, 0)
		if err != nil {
			logger.Error(numeric + " is not an integer")
			panic(numeric + " is not an integer")
		}
		intMap[numeric] = value
	}

	return Config{
		port:              intMap["PORT"],
		env:               variablesMap["ENV"],
		serviceName:       variablesMap["SERVICE_NAME"],
		maxIncludeDepth:   intMap["MAX_INCLUDE_DEPTH"],
		defaultPageSize:   intMap["DEFAULT_PAGE_SIZE"],
		maxPageSize:       intMap["MAX_PAGE_SIZE"],
		rateLimiterMax:    intMap["RATE_LIMITER_MAX"],
		rateLimiterExpSec: intMap["RATE_LIMITER_EXP_SEC"],
		loggerConfig: NewLoggerConfig(
			strings.ToLower(variablesMap["DEBUG"]) == "true",
			variablesMap["ENV"],
			variablesMap["SERVICE_NAME"],
		),
	}
}
