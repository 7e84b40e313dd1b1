package pages

// Index is the harness landing page. Its single format slot receives the
// rendered recent-loads list.
var Index = `
<!DOCTYPE html>
<html>
<head>
    <title>ytembed harness</title>
    <style>
        body {
            font-family: Arial, sans-serif;
            line-height: 1.6;
            max-width: 800px;
            margin: 0 auto;
            padding: 20px;
        }
        code {
            background: #f4f4f4;
            padding: 2px 4px;
        }
        li { margin-bottom: 4px; }
    </style>
</head>
<body>
    <h1>ytembed harness</h1>
    <p>Endpoints:</p>
    <ul>
        <li><code>GET /embed/video/:videoId</code> &mdash; serve the embed page for a video</li>
        <li><code>GET /embed/playlist/:playlistId</code> &mdash; serve the embed page for a playlist</li>
        <li><code>GET /callback?url=ytplayer://...</code> &mdash; run a callback URL through the bridge</li>
        <li><code>GET /history</code> &mdash; recent loads as JSON</li>
        <li><code>GET /resolve?url=...</code> &mdash; extract ids from a pasted YouTube URL</li>
    </ul>
    <h2>Recent loads</h2>
    <ul>%s</ul>
</body>
</html>`
