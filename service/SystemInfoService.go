// Copyright 2024-2025 NetCracker Technology Corporation
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package service

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"fmt"
	"os"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/swfavorites/swfavorites-service/view"
)

const (
	JWT_PRIVATE_KEY             = "JWT_PRIVATE_KEY"
	ARTIFACT_DESCRIPTOR_VERSION = "ARTIFACT_DESCRIPTOR_VERSION"
	BASE_PATH                   = "BASE_PATH"
	PRODUCTION_MODE             = "PRODUCTION_MODE"
	LOG_LEVEL                   = "LOG_LEVEL"
	LOG_FILE                    = "LOG_FILE"
	LISTEN_ADDRESS              = "LISTEN_ADDRESS"
	PORT                        = "PORT"
	ORIGIN_ALLOWED              = "ORIGIN_ALLOWED"
	DATABASE_URL                = "DATABASE_URL"
	LOCAL_DB_PATH               = "LOCAL_DB_PATH"
	DEFAULT_USER_ID             = "DEFAULT_USER_ID"
	ADMIN_USERNAME              = "ADMIN_USERNAME"
	ADMIN_EMAIL                 = "ADMIN_EMAIL"
	ADMIN_PASSWORD              = "ADMIN_PASSWORD"
	SWAPI_URL                   = "SWAPI_URL"
	SWAPI_IMPORT_SCHEDULE       = "SWAPI_IMPORT_SCHEDULE"
	METRICS_GETTER_SCHEDULE     = "METRICS_GETTER_SCHEDULE"
)

type SystemInfoService interface {
	GetSystemInfo() *view.SystemInfo
	Init() error
	GetBasePath() string
	GetJwtPrivateKey() []byte
	IsProductionMode() bool
	GetBackendVersion() string
	GetLogLevel() string
	GetLogFile() string
	GetListenAddress() string
	GetOriginAllowed() string
	GetDatabaseUrl() string
	GetStorageType() view.StorageType
	GetLocalDbPath() string
	// GetDefaultUserId returns the user acting on unauthenticated requests, 0 when disabled.
	GetDefaultUserId() int
	GetZeroDayAdminCreds() (string, string, string, error)
	GetSwapiUrl() string
	GetSwapiImportSchedule() string
	GetMetricsGetterSchedule() string
}

func NewSystemInfoService() (SystemInfoService, error) {
	s := &systemInfoServiceImpl{
		systemInfoMap: make(map[string]interface{})}
	if err := s.Init(); err != nil {
		log.Error("Failed to read system info: " + err.Error())
		return nil, err
	}
	return s, nil
}

type systemInfoServiceImpl struct {
	systemInfoMap map[string]interface{}
}

func (g systemInfoServiceImpl) GetSystemInfo() *view.SystemInfo {
	return &view.SystemInfo{
		BackendVersion: g.GetBackendVersion(),
		ProductionMode: g.IsProductionMode(),
		Storage:        g.GetStorageType(),
	}
}

func (g systemInfoServiceImpl) Init() error {
	g.setBasePath()
	if err := g.setProductionMode(); err != nil {
		return err
	}
	if err := g.setJwtPrivateKey(); err != nil {
		return err
	}
	if err := g.setDefaultUserId(); err != nil {
		return err
	}
	if err := g.setDatabaseUrl(); err != nil {
		return err
	}
	g.setBackendVersion()
	g.setLogLevel()
	g.setLogFile()
	g.setListenAddress()
	g.setOriginAllowed()
	g.setLocalDbPath()
	g.setSwapiUrl()
	g.setSwapiImportSchedule()
	g.setMetricsGetterSchedule()
	return nil
}

func (g systemInfoServiceImpl) setBasePath() {
	g.systemInfoMap[BASE_PATH] = os.Getenv(BASE_PATH)
	if g.systemInfoMap[BASE_PATH] == "" {
		g.systemInfoMap[BASE_PATH] = "."
	}
}

func (g systemInfoServiceImpl) GetBasePath() string {
	return g.systemInfoMap[BASE_PATH].(string)
}

func (g systemInfoServiceImpl) setProductionMode() error {
	envVal := os.Getenv(PRODUCTION_MODE)
	if envVal == "" {
		envVal = "false"
	}
	productionMode, err := strconv.ParseBool(envVal)
	if err != nil {
		return fmt.Errorf("failed to parse %v env value: %v", PRODUCTION_MODE, err.Error())
	}
	g.systemInfoMap[PRODUCTION_MODE] = productionMode
	return nil
}

func (g systemInfoServiceImpl) IsProductionMode() bool {
	return g.systemInfoMap[PRODUCTION_MODE].(bool)
}

func (g systemInfoServiceImpl) setJwtPrivateKey() error {
	decodePrivateKey, err := base64.StdEncoding.DecodeString(os.Getenv(JWT_PRIVATE_KEY))
	if err != nil {
		return fmt.Errorf("can't decode env JWT_PRIVATE_KEY. Error - %s", err.Error())
	}
	if len(decodePrivateKey) == 0 {
		if g.IsProductionMode() {
			return fmt.Errorf("env JWT_PRIVATE_KEY is not set or empty")
		}
		log.Warn("JWT_PRIVATE_KEY is not set, generating a key for this process only")
		decodePrivateKey, err = generatePrivateKey()
		if err != nil {
			return fmt.Errorf("failed to generate jwt private key: %w", err)
		}
	}
	g.systemInfoMap[JWT_PRIVATE_KEY] = decodePrivateKey
	return nil
}

func generatePrivateKey() ([]byte, error) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		return nil, err
	}
	der, err := x509.MarshalPKCS8PrivateKey(key)
	if err != nil {
		return nil, err
	}
	return pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der}), nil
}

func (g systemInfoServiceImpl) GetJwtPrivateKey() []byte {
	return g.systemInfoMap[JWT_PRIVATE_KEY].([]byte)
}

func (g systemInfoServiceImpl) setDefaultUserId() error {
	envVal := os.Getenv(DEFAULT_USER_ID)
	if envVal == "" {
		if g.IsProductionMode() {
			envVal = "0"
		} else {
			envVal = "1"
		}
	}
	userId, err := strconv.Atoi(envVal)
	if err != nil || userId < 0 {
		return fmt.Errorf("failed to parse %v env value '%v': expected a non-negative integer", DEFAULT_USER_ID, envVal)
	}
	if userId != 0 && g.IsProductionMode() {
		log.Warnf("%v is set in production mode, unauthenticated requests act as user %d", DEFAULT_USER_ID, userId)
	}
	g.systemInfoMap[DEFAULT_USER_ID] = userId
	return nil
}

func (g systemInfoServiceImpl) GetDefaultUserId() int {
	return g.systemInfoMap[DEFAULT_USER_ID].(int)
}

func (g systemInfoServiceImpl) setDatabaseUrl() error {
	url := os.Getenv(DATABASE_URL)
	if url != "" && !strings.HasPrefix(url, "postgres://") && !strings.HasPrefix(url, "postgresql://") {
		return fmt.Errorf("unsupported %v scheme, expected postgres:// or postgresql://", DATABASE_URL)
	}
	g.systemInfoMap[DATABASE_URL] = url
	return nil
}

func (g systemInfoServiceImpl) GetDatabaseUrl() string {
	return g.systemInfoMap[DATABASE_URL].(string)
}

func (g systemInfoServiceImpl) GetStorageType() view.StorageType {
	if g.GetDatabaseUrl() != "" {
		return view.StoragePostgres
	}
	return view.StorageLocal
}

func (g systemInfoServiceImpl) setLocalDbPath() {
	path := os.Getenv(LOCAL_DB_PATH)
	if path == "" {
		path = "/tmp/swfavorites.db"
	}
	g.systemInfoMap[LOCAL_DB_PATH] = path
}

func (g systemInfoServiceImpl) GetLocalDbPath() string {
	return g.systemInfoMap[LOCAL_DB_PATH].(string)
}

func (g systemInfoServiceImpl) setBackendVersion() {
	version := os.Getenv(ARTIFACT_DESCRIPTOR_VERSION)
	if version == "" {
		version = "unknown"
	}
	g.systemInfoMap[ARTIFACT_DESCRIPTOR_VERSION] = version
}

func (g systemInfoServiceImpl) GetBackendVersion() string {
	return g.systemInfoMap[ARTIFACT_DESCRIPTOR_VERSION].(string)
}

func (g systemInfoServiceImpl) setLogLevel() {
	g.systemInfoMap[LOG_LEVEL] = os.Getenv(LOG_LEVEL)
}

func (g systemInfoServiceImpl) GetLogLevel() string {
	return g.systemInfoMap[LOG_LEVEL].(string)
}

func (g systemInfoServiceImpl) setLogFile() {
	g.systemInfoMap[LOG_FILE] = os.Getenv(LOG_FILE)
}

func (g systemInfoServiceImpl) GetLogFile() string {
	return g.systemInfoMap[LOG_FILE].(string)
}

func (g systemInfoServiceImpl) setListenAddress() {
	listenAddr := os.Getenv(LISTEN_ADDRESS)
	if listenAddr == "" {
		if port := os.Getenv(PORT); port != "" {
			listenAddr = ":" + port
		} else {
			listenAddr = ":3000"
		}
	}
	g.systemInfoMap[LISTEN_ADDRESS] = listenAddr
}

func (g systemInfoServiceImpl) GetListenAddress() string {
	return g.systemInfoMap[LISTEN_ADDRESS].(string)
}

func (g systemInfoServiceImpl) setOriginAllowed() {
	origin := os.Getenv(ORIGIN_ALLOWED)
	if origin == "" {
		origin = "*"
	}
	g.systemInfoMap[ORIGIN_ALLOWED] = origin
}

func (g systemInfoServiceImpl) GetOriginAllowed() string {
	return g.systemInfoMap[ORIGIN_ALLOWED].(string)
}

func (g systemInfoServiceImpl) GetZeroDayAdminCreds() (string, string, string, error) {
	username := os.Getenv(ADMIN_USERNAME)
	email := os.Getenv(ADMIN_EMAIL)
	password := os.Getenv(ADMIN_PASSWORD)
	if email == "" || password == "" {
		return "", "", "", fmt.Errorf("env %v or %v is not set", ADMIN_EMAIL, ADMIN_PASSWORD)
	}
	if username == "" {
		username = strings.Split(email, "@")[0]
	}
	return username, email, password, nil
}

func (g systemInfoServiceImpl) setSwapiUrl() {
	url := os.Getenv(SWAPI_URL)
	if url == "" {
		url = "https://swapi.dev/api"
	}
	g.systemInfoMap[SWAPI_URL] = strings.TrimSuffix(url, "/")
}

func (g systemInfoServiceImpl) GetSwapiUrl() string {
	return g.systemInfoMap[SWAPI_URL].(string)
}

func (g systemInfoServiceImpl) setSwapiImportSchedule() {
	g.systemInfoMap[SWAPI_IMPORT_SCHEDULE] = os.Getenv(SWAPI_IMPORT_SCHEDULE)
}

func (g systemInfoServiceImpl) GetSwapiImportSchedule() string {
	return g.systemInfoMap[SWAPI_IMPORT_SCHEDULE].(string)
}

func (g systemInfoServiceImpl) setMetricsGetterSchedule() {
	schedule := os.Getenv(METRICS_GETTER_SCHEDULE)
	if schedule == "" {
		schedule = "*/5 * * * *"
	}
	g.systemInfoMap[METRICS_GETTER_SCHEDULE] = schedule
}

func (g systemInfoServiceImpl) GetMetricsGetterSchedule() string {
	return g.systemInfoMap[METRICS_GETTER_SCHEDULE].(string)
}
