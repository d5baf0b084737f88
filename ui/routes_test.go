package ui

import (
	"testing"

	"github.com/maxence-charriere/go-app/v9/pkg/app"
	"github.com/stretchr/testify/require"

	"frontend/route"
)

func TestPageFor(t *testing.T) {
	require.IsType(t, &Home{}, PageFor(route.Resolve("/")))
	require.IsType(t, &About{}, PageFor(route.Resolve("/about")))
	require.IsType(t, &NotFound{}, PageFor(route.Resolve("/missing")))
}

func TestHome_MountsOneLoader(t *testing.T) {
	compo := &Home{}
	disp := app.NewServerTester(compo)
	defer disp.Close()
	disp.Consume()

	require.NoError(t, app.TestMatch(compo, app.TestUIDescriptor{
		Path:     app.TestPath(0),
		Expected: app.Div().Class("screen"),
	}))
	require.NoError(t, app.TestMatch(compo, app.TestUIDescriptor{
		Path:     app.TestPath(0, 0),
		Expected: &Loader{},
	}))
	require.Error(t, app.TestMatch(compo, app.TestUIDescriptor{
		Path:     app.TestPath(0, 1),
		Expected: &Loader{},
	}))
}

func TestAbout_RendersHeadingOnly(t *testing.T) {
	compo := &About{}
	disp := app.NewServerTester(compo)
	defer disp.Close()
	disp.Consume()

	require.NoError(t, app.TestMatch(compo, app.TestUIDescriptor{
		Path:     app.TestPath(0),
		Expected: app.H1(),
	}))
	require.NoError(t, app.TestMatch(compo, app.TestUIDescriptor{
		Path:     app.TestPath(0, 0),
		Expected: app.Text("About"),
	}))
	require.Error(t, app.TestMatch(compo, app.TestUIDescriptor{
		Path:     app.TestPath(0, 0),
		Expected: &Loader{},
	}))
}

func TestNotFound_LinksHome(t *testing.T) {
	compo := &NotFound{}
	disp := app.NewServerTester(compo)
	defer disp.Close()
	disp.Consume()

	require.NoError(t, app.TestMatch(compo, app.TestUIDescriptor{
		Path:     app.TestPath(0, 0, 0),
		Expected: app.Text("Not Found"),
	}))
}
