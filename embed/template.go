package embed

// pageTemplate is the fixed HTML shell around the iframe player. Its single
// format slot receives the JSON-encoded player parameters. The script
// reports every asynchronous notification by navigating to the ytplayer://
// scheme, which the embedding surface intercepts; nothing else leaves the
// page through that channel.
//
// The onPlayerError handler suppresses the state change that the iframe API
// fires right after a video-not-found error, so hosts see one error instead
// of an error followed by a bogus state.
const pageTemplate = `<!DOCTYPE html>
<html>
<head>
    <style>
        body { margin: 0; width: 100%%; height: 100%%; }
        html { width: 100%%; height: 100%%; }
        .embed-container iframe,
        .embed-container object,
        .embed-container embed {
            position: absolute;
            top: 0;
            left: 0;
            width: 100%% !important;
            height: 100%% !important;
        }
    </style>
</head>
<body>
    <div class="embed-container">
        <div id="player"></div>
    </div>
    <script src="https://www.youtube.com/iframe_api"
            onerror="window.location.href='ytplayer://onYouTubeIframeAPIFailedToLoad'"></script>
    <script>
        var player;
        var error = false;

        YT.ready(function() {
            player = new YT.Player('player', %s);
            player.setSize(window.innerWidth, window.innerHeight);
            window.location.href = 'ytplayer://onYouTubeIframeAPIReady';

            function reportPlayTime() {
                if (player.getPlayerState() == YT.PlayerState.PLAYING) {
                    window.location.href = 'ytplayer://onPlayTime?data=' + player.getCurrentTime();
                }
            }
            window.setInterval(reportPlayTime, 500);
        });

        function onReady(event) {
            window.location.href = 'ytplayer://onReady?data=' + event.data;
        }

        function onStateChange(event) {
            if (!error) {
                window.location.href = 'ytplayer://onStateChange?data=' + event.data;
            } else {
                error = false;
            }
        }

        function onPlaybackQualityChange(event) {
            window.location.href = 'ytplayer://onPlaybackQualityChange?data=' + event.data;
        }

        function onPlayerError(event) {
            if (event.data == 100) {
                error = true;
            }
            window.location.href = 'ytplayer://onError?data=' + event.data;
        }

        function onPlayTime(event) {
            window.location.href = 'ytplayer://onPlayTime?data=' + event.data;
        }

        window.onresize = function() {
            player.setSize(window.innerWidth, window.innerHeight);
        }
    </script>
</body>
</html>`
