package server

import "net/http"

// indexPage is the single view the mood watcher renders. It is a pure
// function of the pushed state: the webcam element is always shown, the
// embedded player only while video_stopped is false, and the mood label or
// a waiting message.
const indexPage = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Mood Watcher</title>
<style>
  body { font-family: sans-serif; margin: 2rem; background: #111; color: #eee; }
  #mood { font-size: 1.4rem; margin: 1rem 0; }
  #webcam { border: 1px solid #444; }
  #player-box iframe { border: 0; }
</style>
</head>
<body>
<h1>Mood Watcher</h1>
<img id="webcam" src="/api/stream" width="640" height="480" alt="webcam">
<div id="mood">Waiting for a face...</div>
<div id="player-box"></div>
<script>
function render(state) {
  var mood = document.getElementById("mood");
  mood.textContent = state.label ? state.label : "Waiting for a face...";

  var box = document.getElementById("player-box");
  if (state.video_stopped) {
    box.innerHTML = "<p>Video stopped.</p>";
  } else if (state.player_source) {
    var iframe = box.querySelector("iframe");
    if (!iframe || iframe.src !== state.player_source) {
      box.innerHTML = '<iframe width="640" height="360" src="' +
        state.player_source + '" allow="autoplay"></iframe>';
    }
  } else {
    box.innerHTML = "";
  }
}

var ws = new WebSocket("ws://" + location.host + "/api/ws");
ws.onmessage = function (ev) { render(JSON.parse(ev.data)); };
ws.onerror = function () {
  setInterval(function () {
    fetch("/api/state").then(function (r) { return r.json(); }).then(render);
  }, 1000);
};
</script>
</body>
</html>
`

// handleIndex serves the view page at the root path.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(indexPage))
}
