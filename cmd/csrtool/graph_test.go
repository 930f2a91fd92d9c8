// Copyright 2025 The csrgraph Authors. SPDX-License-Identifier: Apache-2.0

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEdges(t *testing.T) {
	edges, err := parseEdges("0-1, 0-2 ,1-2")
	require.NoError(t, err)
	assert.Equal(t, [][2]int{{0, 1}, {0, 2}, {1, 2}}, edges)
}

func TestParseEdgesEmpty(t *testing.T) {
	edges, err := parseEdges("")
	require.NoError(t, err)
	assert.Nil(t, edges)
}

func TestParseEdgesMalformed(t *testing.T) {
	_, err := parseEdges("0-1,oops")
	assert.Error(t, err)
}

func TestBuildUndirected(t *testing.T) {
	edges, err := parseEdges("0-1,0-2,0-3,0-3")
	require.NoError(t, err)

	g, err := buildUndirected(edges)
	require.NoError(t, err)

	assert.Equal(t, 4, g.n)
	assert.Equal(t, 4, g.Degree(0).Index())
	assert.Equal(t, 1, g.Degree(1).Index())
	assert.Equal(t, 2, g.Degree(3).Index())
}

func TestBuildDirected(t *testing.T) {
	edges, err := parseEdges("0-1,0-2,2-1,2-3")
	require.NoError(t, err)

	g, err := buildDirected(edges)
	require.NoError(t, err)

	assert.Equal(t, 2, g.OutDegree(0).Index())
	assert.Equal(t, 2, g.InDegree(1).Index())
}
