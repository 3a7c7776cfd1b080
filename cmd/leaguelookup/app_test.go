package main

import (
	"testing"

	"leaguelookup/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandOptions(t *testing.T) {
	region = "euw1"
	defer func() { region = "" }()

	assert.Equal(t, config.LoadOptions{Region: "euw1"}, riotOptions())
	assert.Equal(t, config.LoadOptions{Region: "euw1", SkipAPIKey: true}, assetOptions())
}

func TestAssetCommandsRunWithoutKey(t *testing.T) {
	t.Setenv("ENVIRONMENT", "docker")
	t.Setenv("RIOT_API_KEY", "")
	t.Setenv("RIOT_REGION", "MOON1")
	t.Setenv("REDIS_HOST", "")

	region = "kr"
	defer func() { region = "" }()

	_, err := config.Load(riotOptions())
	assert.Error(t, err)

	cfg, err := config.Load(assetOptions())
	require.NoError(t, err)
	assert.Equal(t, "KR", string(cfg.Riot.Region))
}
