/*
 * lits3 (C) 2026 lits3 contributors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package main

import (
	"os"

	"github.com/minio/cli"
	"gopkg.in/yaml.v2"

	"github.com/xingh/lits3/pkg/s3"
)

// hostConfig is the on-disk shape of an endpoint definition.
type hostConfig struct {
	Host         string `yaml:"host"`
	Port         int    `yaml:"port"`
	TLS          bool   `yaml:"tls"`
	VirtualStyle bool   `yaml:"virtualStyle"`
	AccessKey    string `yaml:"accessKey"`
	SecretKey    string `yaml:"secretKey"`
}

func loadHostConfig(path string) (*hostConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	config := new(hostConfig)
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, err
	}
	return config, nil
}

// newClient builds an s3 client from the global flags.
func newClient(ctx *cli.Context) *s3.Client {
	config, err := loadHostConfig(ctx.GlobalString("config"))
	fatalIf(err, "Unable to load host configuration ‘"+ctx.GlobalString("config")+"’.")

	clnt, err := s3.New(&s3.Config{
		Host:            config.Host,
		Port:            config.Port,
		UseTLS:          config.TLS,
		VirtualStyle:    config.VirtualStyle,
		AccessKeyID:     config.AccessKey,
		SecretAccessKey: config.SecretKey,
		UserAgent:       "lits3/" + Version,
		Debug:           ctx.GlobalBool("debug"),
	}, nil)
	fatalIf(err, "Unable to initialize client for host ‘"+config.Host+"’.")
	return clnt
}
