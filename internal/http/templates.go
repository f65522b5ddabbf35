package http

const pageHead = `<!doctype html>
<html lang="en">
<meta charset="utf-8" />
<meta name="viewport" content="width=device-width, initial-scale=1" />
<style>
body{font-family:system-ui,-apple-system,Segoe UI,Roboto;max-width:1400px;margin:0 auto;padding:1rem}
header{display:flex;justify-content:space-between;align-items:center;margin-bottom:1rem}
.grid{display:grid;grid-template-columns:repeat(auto-fill,minmax(300px,1fr));gap:32px 16px}
.muted, small{color:#666}
.channel{display:flex;gap:12px;align-items:center;margin-bottom:1rem}
.channel img{width:64px;height:64px;border-radius:50%}
.watch video{width:100%;max-height:70vh;background:#000;border-radius:12px}
</style>
{{cardStyle}}`

const pageTpl = pageHead + `
<title>{{.Title}} · ytcard</title>
<header>
  <a href="/"><strong>ytcard</strong></a>
</header>

{{with .Channel}}
<section class="channel">
  <img src="{{.ProfileURL}}" alt="">
  <h2>{{.Name}}</h2>
</section>
{{end}}

<section>
  {{if .Videos}}
  <div class="grid">
  {{range .Videos}}
    {{card .}}
  {{end}}
  </div>
  {{else}}
    <small>No videos found</small>
  {{end}}
</section>
{{cardScript}}
`

const watchTpl = pageHead + `
<title>{{.Title}} · ytcard</title>
<header>
  <a href="/"><strong>ytcard</strong></a>
</header>
<section class="watch">
  <video src="{{.VideoURL}}" poster="{{.ThumbnailURL}}" controls playsinline></video>
  <h2>{{.Title}}</h2>
  <div class="channel">
    <a href="{{channelURL .Channel.ID}}"><img src="{{.Channel.ProfileURL}}" alt=""></a>
    <a href="{{channelURL .Channel.ID}}">{{.Channel.Name}}</a>
  </div>
  <div class="muted">{{views .Views}} Views · {{ago .PostedAt}} · {{duration .Duration}}</div>
  {{if .Tags}}<div class="muted">Tags: {{join .Tags ", "}}</div>{{end}}
  {{if .Plot}}<p style="white-space:pre-wrap">{{.Plot}}</p>{{end}}
  <p><a target="_blank" rel="noopener" href="https://www.youtube.com/watch?v={{.ID}}">Open on YouTube</a></p>
</section>
`
