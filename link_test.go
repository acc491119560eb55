package wikictx_test

import (
	"testing"

	"github.com/fwojciec/wikictx"
	"github.com/stretchr/testify/assert"
)

func TestCategorizeLink(t *testing.T) {
	t.Parallel()

	loc := wikictx.WikiLocator{Server: "https://wiki.example.com", Space: "TEAM"}

	tests := []struct {
		name string
		link string
		want wikictx.LinkClass
	}{
		{
			name: "same space page",
			link: "https://wiki.example.com/wiki/spaces/TEAM/pages/2/Guide",
			want: wikictx.LinkSameSpace,
		},
		{
			name: "other space on same server",
			link: "https://wiki.example.com/wiki/spaces/OTHER/pages/5/X",
			want: wikictx.LinkOtherSpace,
		},
		{
			name: "wiki space on different server is external",
			link: "https://wiki.other.com/wiki/spaces/TEAM/pages/1/Home",
			want: wikictx.LinkExternal,
		},
		{
			name: "plain external site",
			link: "https://docs.external.com/a",
			want: wikictx.LinkExternal,
		},
		{
			name: "space landing URL without page path is external",
			link: "https://wiki.example.com/wiki/spaces/TEAM",
			want: wikictx.LinkExternal,
		},
		{
			name: "invalid wiki-shaped link is external",
			link: "https://wiki.example.com/wiki/spaces/",
			want: wikictx.LinkExternal,
		},
		{
			name: "relative link is skipped",
			link: "/wiki/spaces/TEAM/pages/2/Guide",
			want: wikictx.LinkSkip,
		},
		{
			name: "mailto link is skipped",
			link: "mailto:team@example.com",
			want: wikictx.LinkSkip,
		},
		{
			name: "url-encoded space prefix falls through to external",
			link: "https://wiki.example.com/wiki/spaces/TE%41M/pages/2/Guide",
			want: wikictx.LinkExternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, wikictx.CategorizeLink(tt.link, loc))
		})
	}
}
