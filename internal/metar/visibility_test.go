package metar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeVisibility(t *testing.T) {
	cases := []struct {
		name      string
		lead      string
		token     string
		miles     float64
		tenOrMore bool
		desc      string
	}{
		{name: "ten miles", token: "10SM", miles: 10, tenOrMore: true, desc: "10+ miles visibility"},
		{name: "above ten", token: "15SM", miles: 15, tenOrMore: true, desc: "10+ miles visibility"},
		{name: "whole miles", token: "3SM", miles: 3, desc: "3 miles visibility"},
		{name: "fraction", token: "1/2SM", miles: 0.5, desc: "1/2 miles visibility"},
		{name: "quarter", token: "1/4SM", miles: 0.25, desc: "1/4 miles visibility"},
		{name: "mixed", lead: "1", token: "1/2SM", miles: 1.5, desc: "1 1/2 miles visibility"},
		{name: "mixed two", lead: "2", token: "3/4SM", miles: 2.75, desc: "2 3/4 miles visibility"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v := decodeVisibility(tc.lead, tc.token)
			require.NotNil(t, v)
			assert.InDelta(t, tc.miles, v.Miles, 1e-9)
			assert.Equal(t, tc.tenOrMore, v.TenOrMore)
			assert.Equal(t, tc.desc, v.Description)
		})
	}
}

func TestDecodeVisibility_NotVisibility(t *testing.T) {
	assert.Nil(t, decodeVisibility("", "SM"))
	assert.Nil(t, decodeVisibility("", "10"))
	assert.Nil(t, decodeVisibility("", "36008KT"))
	assert.Nil(t, decodeVisibility("", "9999"))
	assert.Nil(t, decodeVisibility("", "1/0SM"))
	// A whole-mile lead only pairs with a fraction token
	assert.Nil(t, decodeVisibility("1", "10SM"))
	assert.Nil(t, decodeVisibility("1", "BKN025"))
}
